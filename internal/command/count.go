package command

import "fmt"

// Count prints the number of live instances of one kind.
type Count struct {
	base
}

func (c *Count) Execute() {
	n, err := c.reg.Count(c.text(0))
	if err != nil {
		c.report(err)
		return
	}
	fmt.Fprintln(c.out, n)
}
