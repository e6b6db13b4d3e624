package command

import "fmt"

// Create makes a new instance of the named kind and prints its id.
type Create struct {
	base
}

func (c *Create) Execute() {
	e, err := c.reg.Create(c.text(0))
	if err != nil {
		c.report(err)
		return
	}
	fmt.Fprintln(c.out, e.ID)
}
