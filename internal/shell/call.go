package shell

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/juniperhq/stay/internal/model"
)

// callPattern matches the dotted call form "<Kind>.<method>(<args>)".
var callPattern = regexp.MustCompile(`^([A-Za-z]\w*)\.([A-Za-z]\w*)\((.*)\)$`)

// parseCall evaluates the argument list of a dotted call and returns the
// method keyword plus the positional tokens, with the kind name
// prepended. Arguments follow a literal-only grammar: quoted strings,
// numbers, booleans, and one flat dict of string keys to primitives.
// Anything else is a syntax error.
func parseCall(kind, method, args string) (string, []any, error) {
	tokens := []any{kind}

	p := &literalParser{input: args}
	p.skipSpaces()
	for !p.done() {
		if len(tokens) > 1 {
			if !p.consume(',') {
				return "", nil, p.errorf("expected ','")
			}
			p.skipSpaces()
		}
		v, err := p.literal()
		if err != nil {
			return "", nil, err
		}
		tokens = append(tokens, v)
		p.skipSpaces()
	}
	return method, tokens, nil
}

// literalParser scans a comma-separated literal argument list.
type literalParser struct {
	input string
	pos   int
}

func (p *literalParser) done() bool {
	return p.pos >= len(p.input)
}

func (p *literalParser) peek() byte {
	return p.input[p.pos]
}

func (p *literalParser) consume(c byte) bool {
	if p.done() || p.input[p.pos] != c {
		return false
	}
	p.pos++
	return true
}

func (p *literalParser) skipSpaces() {
	for !p.done() && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}

func (p *literalParser) errorf(format string, args ...any) error {
	return fmt.Errorf("invalid syntax at offset %d: %s", p.pos, fmt.Sprintf(format, args...))
}

// literal parses one argument: a string, number, boolean, or flat dict.
func (p *literalParser) literal() (any, error) {
	if p.done() {
		return nil, p.errorf("expected a literal")
	}
	switch c := p.peek(); {
	case c == '\'' || c == '"':
		return p.stringLit()
	case c == '{':
		return p.dictLit()
	case c == '-' || c == '+' || unicode.IsDigit(rune(c)):
		return p.numberLit()
	default:
		return p.wordLit()
	}
}

// primitive parses one dict value: any literal except a nested dict.
func (p *literalParser) primitive() (any, error) {
	if !p.done() && p.peek() == '{' {
		return nil, p.errorf("nested dicts are not allowed")
	}
	return p.literal()
}

func (p *literalParser) stringLit() (string, error) {
	quote := p.peek()
	p.pos++
	var b strings.Builder
	for !p.done() {
		c := p.peek()
		p.pos++
		switch c {
		case quote:
			return b.String(), nil
		case '\\':
			if p.done() {
				return "", p.errorf("dangling escape")
			}
			b.WriteByte(p.peek())
			p.pos++
		default:
			b.WriteByte(c)
		}
	}
	return "", p.errorf("unterminated string")
}

func (p *literalParser) numberLit() (float64, error) {
	start := p.pos
	if p.peek() == '-' || p.peek() == '+' {
		p.pos++
	}
	for !p.done() && (unicode.IsDigit(rune(p.peek())) || p.peek() == '.' || p.peek() == 'e' || p.peek() == 'E') {
		p.pos++
	}
	n, err := strconv.ParseFloat(p.input[start:p.pos], 64)
	if err != nil {
		return 0, p.errorf("bad number %q", p.input[start:p.pos])
	}
	return n, nil
}

func (p *literalParser) wordLit() (any, error) {
	start := p.pos
	for !p.done() && (unicode.IsLetter(rune(p.peek())) || unicode.IsDigit(rune(p.peek())) || p.peek() == '_') {
		p.pos++
	}
	switch word := p.input[start:p.pos]; word {
	case "True", "true":
		return true, nil
	case "False", "false":
		return false, nil
	default:
		return nil, p.errorf("unexpected token %q", word)
	}
}

// dictLit parses a flat dict of string keys to primitive values into an
// ordered attribute list, preserving source order for the update command.
func (p *literalParser) dictLit() (model.Attributes, error) {
	p.pos++ // consume '{'
	attrs := model.Attributes{}
	p.skipSpaces()
	if p.consume('}') {
		return attrs, nil
	}
	for {
		p.skipSpaces()
		if p.done() || (p.peek() != '\'' && p.peek() != '"') {
			return nil, p.errorf("dict keys must be strings")
		}
		key, err := p.stringLit()
		if err != nil {
			return nil, err
		}
		p.skipSpaces()
		if !p.consume(':') {
			return nil, p.errorf("expected ':'")
		}
		p.skipSpaces()
		raw, err := p.primitive()
		if err != nil {
			return nil, err
		}
		value, ok := model.FromAny(raw)
		if !ok {
			return nil, p.errorf("bad value for key %q", key)
		}
		attrs = append(attrs, model.Attribute{Name: key, Value: value})

		p.skipSpaces()
		if p.consume('}') {
			return attrs, nil
		}
		if !p.consume(',') {
			return nil, p.errorf("expected ',' or '}'")
		}
	}
}
