package desim

import "github.com/joeycumines/logiface"

// Config configures a Kernel, via NewKernel. The zero value is valid: no
// logging, nothing else to set. (Mirrors microbatch.BatcherConfig: "the
// provided config may be nil.")
type Config[M any] struct {
	// Logger, if non-nil, receives a Debug record for every processed
	// event, and an Err record immediately before any FatalError panics.
	Logger *logiface.Logger[logiface.Event]
}

// Kernel is a discrete-event simulation kernel: the event queue, resource
// table, process table, and the effect dispatcher that ties them together
// (spec.md §4.6, "the hardest part"). Construct one with NewKernel.
type Kernel[M any] struct {
	ctx       *Context[M]
	processes *processTable[M]
	resources resourceTable
	queue     eventQueue

	processedEvents []Event

	logger *logiface.Logger[logiface.Event]
}

// NewKernel creates a Kernel bound to ctx, the externally-supplied context
// handle (spec.md §6) that process bodies close over to read the clock,
// push/pop messages, and query/set interrupts. ctx must not be nil — a
// Kernel with no Context to mutate cannot advance its clock.
//
// cfg may be nil, equivalent to a zero Config.
func NewKernel[M any](ctx *Context[M], cfg *Config[M]) *Kernel[M] {
	if ctx == nil {
		panic("desim: nil context")
	}
	if cfg == nil {
		cfg = &Config[M]{}
	}
	return &Kernel[M]{
		ctx:       ctx,
		processes: newProcessTable[M](),
		logger:    cfg.Logger,
	}
}

// NewContext creates a fresh Context, with the clock at 0 and empty
// mailbox/interrupt tables — the simulation's externally-supplied handle,
// ready to be passed both to NewKernel and captured by process body
// closures.
func NewContext[M any]() *Context[M] {
	return newContext[M]()
}

// Context returns the Context this Kernel is bound to, so callers may read
// the clock or inspect mailboxes without going through the Kernel itself.
func (k *Kernel[M]) Context() *Context[M] {
	return k.ctx
}

// Clock returns the current virtual time.
func (k *Kernel[M]) Clock() float64 {
	return k.ctx.clock.now()
}

// CreateProcess registers body as a suspended process under pid. Duplicate
// registration of an already-used pid is a fatal configuration error
// (spec.md §4.5).
func (k *Kernel[M]) CreateProcess(pid ProcessId, body Body[M]) {
	defer k.recoverFatal()
	k.processes.create(pid, body)
}

// CreateResource registers a new finite resource with capacity n, fully
// available, and returns its densely, in-order allocated id.
func (k *Kernel[M]) CreateResource(capacity int) ResourceId {
	return k.resources.create(capacity)
}

// ScheduleEvent injects an event into the queue from outside any process
// body — the other way (besides yielding an Effect) to get a process
// running. An event with a NaN time is illegal and is rejected immediately
// with a FatalError panic (spec.md §3). An event scheduled strictly in the
// past is clamped to the current clock time, rather than rejected, so that
// external seeding never regresses the clock (spec.md §4.2, §9): only a
// truly malformed (NaN) time aborts the simulation.
func (k *Kernel[M]) ScheduleEvent(e Event) {
	k.pushEvent(e.Time, e.Process)
}

// clampEventTime validates t, panicking a FatalError if it is NaN (spec.md
// §3: an event with NaN time "is illegal and must be rejected or trapped" —
// a rule that applies to every insertion path, not only externally-seeded
// ones), and clamps it up to the current clock time if it would otherwise
// regress the clock (spec.md §4.2). This is the single choke point every
// new Event passes through, whether seeded by ScheduleEvent or produced by
// dispatch from a process-yielded Timeout/EventEffect/SendMessage delta: a
// process yielding Timeout[M](-5) or Timeout[M](math.NaN()) (violating the
// documented Δ ≥ 0 precondition) is clamped/trapped exactly as an
// externally-seeded past/NaN time would be, instead of silently regressing
// the clock or smuggling a NaN into the heap's comparisons.
func (k *Kernel[M]) clampEventTime(t float64, pid ProcessId) float64 {
	if !validEventTime(t) {
		err := fatalErrorf("event scheduled with NaN time for process %d", pid)
		logFatal(k.logger, err)
		panic(err)
	}
	if now := k.ctx.clock.now(); t < now {
		return now
	}
	return t
}

// pushEvent validates and clamps t via clampEventTime, then pushes the
// resulting Event for pid onto the queue. Every insertion into the queue
// goes through this one helper.
func (k *Kernel[M]) pushEvent(t float64, pid ProcessId) {
	k.queue.push(Event{Time: k.clampEventTime(t, pid), Process: pid})
}

// ProcessedEvents returns the read-only log of every event the kernel has
// popped and dispatched so far, oldest first. The returned slice aliases
// the kernel's internal backing array and must not be mutated.
func (k *Kernel[M]) ProcessedEvents() []Event {
	return k.processedEvents[:len(k.processedEvents):len(k.processedEvents)]
}

// PendingEvents reports the number of events currently queued, awaiting a
// Step.
func (k *Kernel[M]) PendingEvents() int {
	return k.queue.size()
}

// Close releases every still-suspended process's underlying goroutine
// (via iter.Pull's stop function). It is safe, but not required, to call
// after a simulation is done being stepped; it exists for callers that
// abandon a Kernel with processes still parked on Wait.
func (k *Kernel[M]) Close() {
	k.processes.closeAll()
}

// Step performs one atomic transformation of kernel state, per spec.md
// §4.6:
//
//  1. If the event queue is empty, Step is a no-op (quiescence, not an
//     error — spec.md §7).
//  2. Pop the earliest-scheduled event e.
//  3. Advance the clock to e.Time.
//  4. Resume e.Process once. Resuming a tombstoned (already completed)
//     process, or one that was never registered, is a fatal kernel error.
//  5. If the body completes, tombstone its slot and log the event.
//  6. If the body yields an Effect, dispatch it (see dispatch) and log the
//     event.
func (k *Kernel[M]) Step() {
	defer k.recoverFatal()

	e, ok := k.queue.pop()
	if !ok {
		return
	}
	k.ctx.clock.advance(e.Time)

	effect, live := k.processes.resume(e.Process)
	k.processedEvents = append(k.processedEvents, e)
	if !live {
		logStep(k.logger, e, 0, true)
		return
	}
	k.dispatch(e, effect)
	logStep(k.logger, e, effect.kind, false)
}

// dispatch interprets one yielded Effect, per the table in spec.md §4.6.
// Every branch that enqueues more than one event at the current instant
// does so in the exact order spec.md lists, which — combined with
// eventQueue's sequence-number tie-break — is what gives the kernel its
// stable FIFO ordering among simultaneous events (spec.md §5, §8).
func (k *Kernel[M]) dispatch(e Event, effect Effect[M]) {
	now := e.Time
	pid := e.Process

	switch effect.kind {
	case effectTimeout:
		k.pushEvent(now+effect.delta, pid)

	case effectEvent:
		k.pushEvent(now+effect.delta, effect.pid)

	case effectRequest:
		r := k.resources.get(effect.rid)
		if r.request(pid) {
			k.pushEvent(now, pid)
		}
		// else: pid is now queued as a waiter; it is not rescheduled.

	case effectRelease:
		r := k.resources.get(effect.rid)
		if woken, ok := r.release(); ok {
			k.pushEvent(now, woken)
		}
		k.pushEvent(now, pid)

	case effectWait:
		// Nothing to do: pid will not resume unless some other effect
		// (Interrupt, SendMessage, EventEffect) or an external
		// ScheduleEvent names it.

	case effectInterrupt:
		k.ctx.Interrupt(effect.pid)
		k.pushEvent(now, effect.pid)
		k.pushEvent(now, pid)

	case effectSendMessage:
		k.ctx.PushMessage(effect.pid, effect.message)
		k.pushEvent(now+effect.delta, effect.pid)
		k.pushEvent(now, pid)
	}
}

// recoverFatal logs a FatalError (if logging is configured) immediately
// before letting it continue unwinding the panic — spec.md §7: "surfaces
// fatal errors immediately at the point of detection; it does not swallow
// them."
func (k *Kernel[M]) recoverFatal() {
	if r := recover(); r != nil {
		if fe, ok := r.(FatalError); ok {
			logFatal(k.logger, fe)
		}
		panic(r)
	}
}
