package command

import "fmt"

// All prints every instance, filtered to one kind when given.
type All struct {
	base
}

func (c *All) Execute() {
	kindName := c.text(0)
	if kindName != "" {
		if _, err := c.reg.Kind(kindName); err != nil {
			c.report(err)
			return
		}
	}
	for _, line := range c.reg.ListAll(kindName) {
		fmt.Fprintln(c.out, line)
	}
}
