package command

import "fmt"

// Show prints the display form of one instance.
type Show struct {
	base
}

func (c *Show) Execute() {
	e, err := c.reg.Find(c.text(0), c.text(1))
	if err != nil {
		c.report(err)
		return
	}
	fmt.Fprintln(c.out, e)
}
