// Package desim implements a discrete-event simulation kernel, inspired by
// the SimPy library for Python. A simulation advances a virtual clock by
// resuming processes that voluntarily suspend, yielding an Effect that
// describes why: a timeout, a request for a finite resource, a wait for a
// message, and so on.
//
// # Processes
//
// A process is a Body[M]: a resumable computation built from the standard
// library's iter.Seq, which yields Effect[M] values instead of returning
// them. When registered with a Kernel via CreateProcess, it is assigned a
// caller-chosen ProcessId that remains valid (if eventually stale) for the
// life of the simulation, even after the process completes.
//
// # Resources
//
// A finite Resource is a counting semaphore with a strictly FIFO waiter
// queue; see CreateResource.
//
// After setting up the simulation, it can be run step by step with Step, or
// until an EndCondition is met, with Run. The kernel retains a log of every
// processed Event, available via ProcessedEvents.
package desim
