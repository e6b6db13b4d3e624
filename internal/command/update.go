package command

import (
	"github.com/juniperhq/stay/internal/model"
	"github.com/juniperhq/stay/internal/registry"
)

// Update mutates attributes of one instance. It dispatches over two
// sub-variants chosen by inspecting the bound tokens: a key/value pair
// form and a dict form. The forms are tried in a fixed order; the pair
// form is the fallback when neither matches, so its validation
// diagnostics apply to short token lists too.
type Update struct {
	base
}

var updateForms = []updateForm{mapForm{}, pairForm{}}

func (c *Update) Execute() {
	for _, f := range updateForms {
		if f.matches(c.tokens) {
			f.run(c)
			return
		}
	}
	pairForm{}.run(c)
}

// updateForm is one update sub-variant.
type updateForm interface {
	matches(tokens []any) bool
	run(c *Update)
}

// pairForm handles "update <Kind> <id> <attr> <value>".
type pairForm struct{}

func (pairForm) matches(tokens []any) bool {
	if len(tokens) < 4 {
		return false
	}
	_, ok := tokens[2].(string)
	return ok
}

func (pairForm) run(c *Update) {
	if _, err := c.reg.Find(c.text(0), c.text(1)); err != nil {
		c.report(err)
		return
	}
	name := c.text(2)
	if name == "" {
		c.report(registry.ErrMissingAttributeName)
		return
	}
	value, ok := model.FromAny(c.token(3))
	if !ok || value.IsEmpty() {
		c.report(registry.ErrMissingAttributeValue)
		return
	}
	c.report(c.reg.UpdateAttribute(c.text(0), c.text(1), name, value))
}

// mapForm handles "update <Kind> <id> {…}" where the third token is the
// parsed attribute list of a dict literal.
type mapForm struct{}

func (mapForm) matches(tokens []any) bool {
	if len(tokens) < 3 {
		return false
	}
	_, ok := tokens[2].(model.Attributes)
	return ok
}

func (mapForm) run(c *Update) {
	if _, err := c.reg.Find(c.text(0), c.text(1)); err != nil {
		c.report(err)
		return
	}
	attrs, _ := c.token(2).(model.Attributes)
	c.report(c.reg.UpdateAttributes(c.text(0), c.text(1), attrs))
}
