// Package command implements the console's units of work. Every command
// follows the same lifecycle: positional tokens are bound, Execute
// validates them and performs one registry operation, and Reset clears
// the bound state. Execute recovers every domain failure itself and
// prints a fixed diagnostic; nothing propagates past this boundary.
package command

import (
	"errors"
	"fmt"
	"io"

	"github.com/juniperhq/stay/internal/model"
	"github.com/juniperhq/stay/internal/registry"
)

// Command is one console operation with a bind/execute/reset lifecycle.
type Command interface {
	// Bind assigns positional tokens to the command's slots in order.
	// Extra tokens are ignored; missing slots stay unset.
	Bind(tokens []any)
	// Execute validates the bound tokens and runs the operation.
	Execute()
	// Reset clears all bound tokens.
	Reset()
}

// Set builds the keyword → command arena. It is built once at startup
// and the instances are reused across dispatches, so every command keeps
// its token state per instance.
func Set(reg *registry.Registry, out io.Writer) map[string]Command {
	return map[string]Command{
		"create":  &Create{base: base{reg: reg, out: out}},
		"show":    &Show{base: base{reg: reg, out: out}},
		"destroy": &Destroy{base: base{reg: reg, out: out}},
		"all":     &All{base: base{reg: reg, out: out}},
		"count":   &Count{base: base{reg: reg, out: out}},
		"update":  &Update{base: base{reg: reg, out: out}},
	}
}

// base carries the registry handle, the output sink, and the bound
// positional tokens shared by every command variant.
type base struct {
	reg    *registry.Registry
	out    io.Writer
	tokens []any
}

func (b *base) Bind(tokens []any) {
	b.tokens = append([]any(nil), tokens...)
}

func (b *base) Reset() {
	b.tokens = nil
}

// token returns the i-th bound token, or nil when the slot is unset.
func (b *base) token(i int) any {
	if i >= len(b.tokens) {
		return nil
	}
	return b.tokens[i]
}

// text returns the i-th token when it is a string, else "".
func (b *base) text(i int) string {
	s, _ := b.token(i).(string)
	return s
}

// report prints the console diagnostic for a domain error. Refused
// attribute updates stay silent; anything else (a failed document
// write) surfaces as a plain error line.
func (b *base) report(err error) {
	if err == nil {
		return
	}
	for _, d := range diagnostics {
		if errors.Is(err, d.err) {
			fmt.Fprintln(b.out, d.msg)
			return
		}
	}
	var coerce *model.CoerceError
	var protected *model.ProtectedAttributeError
	if errors.As(err, &coerce) || errors.As(err, &protected) {
		return
	}
	fmt.Fprintf(b.out, "Error: %v\n", err)
}

var diagnostics = []struct {
	err error
	msg string
}{
	{registry.ErrMissingClassName, "** class name missing **"},
	{registry.ErrUnknownClass, "** class doesn't exist **"},
	{registry.ErrMissingInstanceID, "** instance id missing **"},
	{registry.ErrNotFound, "** no instance found **"},
	{registry.ErrMissingAttributeName, "** attribute name missing **"},
	{registry.ErrMissingAttributeValue, "** value missing **"},
}
