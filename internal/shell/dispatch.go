package shell

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/juniperhq/stay/internal/command"
	"github.com/juniperhq/stay/internal/registry"
)

// ErrExit is returned by Dispatch when the line is one of the two exit
// sentinels (quit, EOF).
var ErrExit = errors.New("exit")

// Dispatcher turns raw input lines into command executions. The keyword
// to command mapping is built once; command instances are reused and
// always reset after a dispatch, successful or not.
type Dispatcher struct {
	commands map[string]command.Command
	out      io.Writer
}

// NewDispatcher builds the command arena bound to reg, writing all
// command output to out.
func NewDispatcher(reg *registry.Registry, out io.Writer) *Dispatcher {
	return &Dispatcher{
		commands: command.Set(reg, out),
		out:      out,
	}
}

// Dispatch runs one input line: tokenize (or parse the dotted call
// form), bind, execute, reset. Empty lines are no-ops. Parse failures
// are reported and the line is dropped without reaching the registry.
func (d *Dispatcher) Dispatch(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	if m := callPattern.FindStringSubmatch(line); m != nil {
		method, tokens, err := parseCall(m[1], m[2], m[3])
		if err != nil {
			fmt.Fprintln(d.out, err)
			d.unknown(line)
			return nil
		}
		if _, ok := d.commands[method]; !ok {
			d.unknown(line)
			return nil
		}
		d.run(method, tokens)
		return nil
	}

	tokens, err := Split(line)
	if err != nil {
		fmt.Fprintln(d.out, err)
		return nil
	}
	if len(tokens) == 0 {
		return nil
	}

	keyword := tokens[0]
	if keyword == "quit" || keyword == "EOF" {
		return ErrExit
	}
	if _, ok := d.commands[keyword]; !ok {
		d.unknown(line)
		return nil
	}

	rest := make([]any, len(tokens)-1)
	for i, t := range tokens[1:] {
		rest[i] = t
	}
	d.run(keyword, rest)
	return nil
}

func (d *Dispatcher) run(keyword string, tokens []any) {
	cmd := d.commands[keyword]
	cmd.Bind(tokens)
	defer cmd.Reset()
	cmd.Execute()
}

func (d *Dispatcher) unknown(line string) {
	fmt.Fprintf(d.out, "*** Unknown syntax: %s\n", line)
}
