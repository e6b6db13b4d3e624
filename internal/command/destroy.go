package command

// Destroy removes one instance and flushes the store.
type Destroy struct {
	base
}

func (c *Destroy) Execute() {
	c.report(c.reg.Remove(c.text(0), c.text(1)))
}
