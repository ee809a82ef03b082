package desim

// clock holds the current virtual time. It is mutated only by Kernel.Step,
// which sets it to the time of the event it just popped; time never
// regresses, because events are always popped in ascending (time, seq)
// order.
type clock struct {
	time float64
}

func (c *clock) now() float64 {
	return c.time
}

func (c *clock) advance(t float64) {
	c.time = t
}
