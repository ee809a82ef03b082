package desim

// effectKind tags which variant an Effect[M] holds.
type effectKind int

const (
	effectTimeout effectKind = iota
	effectEvent
	effectRequest
	effectRelease
	effectWait
	effectInterrupt
	effectSendMessage
)

// Effect is the tagged value a process Body yields to tell the kernel why it
// is suspending. Construct one with Timeout, EventEffect, Request, Release,
// Wait, Interrupt, or SendMessage; do not build the struct literal directly,
// since the zero value (kind effectTimeout, Delta 0) is a valid but easily
// mistaken-for-accidental Effect.
type Effect[M any] struct {
	kind effectKind

	// Delta is the relative time offset used by Timeout, EventEffect, and
	// SendMessage.
	delta float64
	// pid is the target process for EventEffect, Interrupt, and
	// SendMessage.
	pid ProcessId
	// rid is the target resource for Request and Release.
	rid ResourceId
	// message is the payload carried by SendMessage.
	message M
}

// Timeout resumes the yielding process at now+delta. delta must be >= 0; a
// negative delta is clamped up to now (rather than regressing the clock)
// and a NaN delta is a fatal kernel error, the same treatment
// Kernel.ScheduleEvent gives an externally-seeded Event.
func Timeout[M any](delta float64) Effect[M] {
	return Effect[M]{kind: effectTimeout, delta: delta}
}

// EventEffect schedules pid to run at now+delta; the yielding process does
// not automatically resume. delta is relative to the current time, even
// though the kernel's own terminology speaks of "scheduling the specified
// event" — see SPEC_FULL.md's note on this Open Question.
func EventEffect[M any](delta float64, pid ProcessId) Effect[M] {
	return Effect[M]{kind: effectEvent, delta: delta, pid: pid}
}

// Request acquires one unit of the resource identified by rid, blocking (by
// not rescheduling the yielding process) if none is currently available.
func Request[M any](rid ResourceId) Effect[M] {
	return Effect[M]{kind: effectRequest, rid: rid}
}

// Release gives back one unit of the resource identified by rid.
func Release[M any](rid ResourceId) Effect[M] {
	return Effect[M]{kind: effectRelease, rid: rid}
}

// Wait suspends the yielding process indefinitely: only an external event
// (a message send, an interrupt, or an explicitly scheduled event) can
// resume it.
func Wait[M any]() Effect[M] {
	return Effect[M]{kind: effectWait}
}

// Interrupt marks pid as interrupted and schedules it to run immediately
// (at the current time).
func Interrupt[M any](pid ProcessId) Effect[M] {
	return Effect[M]{kind: effectInterrupt, pid: pid}
}

// SendMessage enqueues m in pid's mailbox and schedules pid to run at
// now+delta.
func SendMessage[M any](pid ProcessId, m M, delta float64) Effect[M] {
	return Effect[M]{kind: effectSendMessage, pid: pid, message: m, delta: delta}
}
