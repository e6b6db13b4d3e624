package shell

import "strings"

// quoteError reports a line whose quoting never closes. The line is
// reported at the parse boundary and treated as a no-op.
type quoteError struct {
	quote rune
}

func (e *quoteError) Error() string {
	return "no closing quotation"
}

// Split tokenizes a command line with shell-style quoting: tokens are
// separated by blanks, single or double quotes group a token, and a
// backslash escapes the next character outside single quotes.
func Split(line string) ([]string, error) {
	var tokens []string
	var cur strings.Builder
	inToken := false
	escaped := false
	var quote rune

	for _, r := range line {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case r == '\\' && quote != '\'':
			escaped = true
			inToken = true
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				cur.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
			inToken = true
		case r == ' ' || r == '\t':
			if inToken {
				tokens = append(tokens, cur.String())
				cur.Reset()
				inToken = false
			}
		default:
			cur.WriteRune(r)
			inToken = true
		}
	}
	if quote != 0 {
		return nil, &quoteError{quote: quote}
	}
	if escaped {
		return nil, &quoteError{quote: '\\'}
	}
	if inToken {
		tokens = append(tokens, cur.String())
	}
	return tokens, nil
}
