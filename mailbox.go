package desim

// Context is the externally-supplied handle process bodies and the kernel
// share: it carries the current time, per-process mailboxes, and per-process
// interrupt flags. Because the kernel is single-threaded and only one
// process body is ever active at a time (suspended precisely at the point
// it yields an Effect), no locking is required here — only the disciplined
// aliasing spec.md §5 describes. An embedder may hold a reference to a
// Context independent of the Kernel that owns it, mirroring the original
// implementation's Context being cloned and handed to process closures
// before the Simulation existed.
type Context[M any] struct {
	clock clock

	mailboxes map[ProcessId][]M
	// interrupted latches: multiple Interrupt calls before a query collapse
	// into a single pending flag.
	interrupted map[ProcessId]bool
}

func newContext[M any]() *Context[M] {
	return &Context[M]{
		mailboxes:   make(map[ProcessId][]M),
		interrupted: make(map[ProcessId]bool),
	}
}

// Time returns the current virtual time.
func (c *Context[M]) Time() float64 {
	return c.clock.now()
}

// PushMessage appends m to pid's mailbox, creating the queue lazily. Only
// called by the kernel, in response to a SendMessage effect.
func (c *Context[M]) PushMessage(pid ProcessId, m M) {
	c.mailboxes[pid] = append(c.mailboxes[pid], m)
}

// PopMessage removes and returns the front of pid's mailbox. ok is false if
// the mailbox is empty (or was never created) — an in-model condition, not
// an error (spec.md §7).
func (c *Context[M]) PopMessage(pid ProcessId) (m M, ok bool) {
	q := c.mailboxes[pid]
	if len(q) == 0 {
		return m, false
	}
	m = q[0]
	// Avoid retaining a reference to a popped element (memory, not
	// correctness).
	var zero M
	q[0] = zero
	c.mailboxes[pid] = q[1:]
	return m, true
}

// Interrupt sets pid's interrupt flag. Only called by the kernel, in
// response to an Interrupt effect.
func (c *Context[M]) Interrupt(pid ProcessId) {
	c.interrupted[pid] = true
}

// CheckInterrupted atomically reads and clears pid's interrupt flag: an
// in-model condition (spec.md §7), not an error. A single pending Interrupt
// is consumed by exactly one CheckInterrupted call; multiple Interrupts
// before a query still collapse into one true result.
func (c *Context[M]) CheckInterrupted(pid ProcessId) bool {
	if c.interrupted[pid] {
		delete(c.interrupted, pid)
		return true
	}
	return false
}
