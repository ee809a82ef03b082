package desim

import "math"

// ProcessId identifies a process. It is assigned by the caller when
// registering a process with CreateProcess, and remains stable (if stale)
// for the life of the simulation, even once the process has completed.
type ProcessId int

// ResourceId identifies a resource, created with CreateResource. Ids are
// allocated by the kernel itself, densely, in registration order.
type ResourceId int

// Event is a pair of an absolute virtual time and the process that should be
// resumed at that time. Events are totally ordered by Time, with ties broken
// by the order in which they were pushed onto the kernel's event queue.
//
// Callers build an Event literal to seed the queue via ScheduleEvent; every
// other Event is built by the kernel from a yielded Effect.
type Event struct {
	// Time is the absolute virtual time the event should fire at.
	Time float64
	// Process is resumed when the event fires.
	Process ProcessId
}

// seq is the FIFO tie-breaker: container/heap (like most off-the-shelf
// priority queues) is not stable for equal keys, so every queued event is
// paired with a strictly increasing sequence number, assigned at push time.
// Events with identical Time then compare by seq, preserving the insertion
// order spec requires (see queue.go).
type scheduledEvent struct {
	Event
	seq uint64
}

func validEventTime(t float64) bool {
	return !math.IsNaN(t)
}
