package desim

import "iter"

// Body is a resumable process: a function shaped like an iter.Seq, which
// yields Effect[M] values to suspend itself. Returning from Body (including
// falling off the end without ever yielding) completes the process
// permanently; the completion value is ignored, matching spec.md's
// "whose completion value is ignored."
//
// The kernel drives a Body with iter.Pull, which is the standard library's
// primitive for exactly this shape of resumable computation: calling the
// returned "next" function resumes the body until its next yield (or until
// it returns), which is precisely the suspend/resume contract spec.md
// requires.
type Body[M any] func(yield func(Effect[M]) bool)

// process is the kernel's internal handle on a registered, not-yet-completed
// Body: the pull-based iterator pair, plus bookkeeping.
type process[M any] struct {
	next func() (Effect[M], bool)
	stop func()
}

// processSlot is a ProcessId's entry in the process table: a live process,
// or a tombstone once its Body has completed. Resuming a tombstoned process is a fatal
// kernel error (spec.md §7); the tombstone is what lets the kernel detect
// that, rather than silently misrouting a stale reference.
type processSlot[M any] struct {
	live *process[M]
	// tombstoned is true once the slot's Body has completed. The kernel
	// deliberately does not delete the map entry: stale ProcessIds must
	// still resolve to "this process exists, but is done," not
	// "no such process."
	tombstoned bool
}

// processTable maps ProcessId to its slot. Entries are never removed, only
// transitioned live -> tombstoned, per spec.md's "does not attempt to
// garbage-collect completed processes from its identity space."
type processTable[M any] struct {
	slots map[ProcessId]*processSlot[M]
}

func newProcessTable[M any]() *processTable[M] {
	return &processTable[M]{slots: make(map[ProcessId]*processSlot[M])}
}

// create registers body under pid. Duplicate registration is a fatal
// configuration error.
func (t *processTable[M]) create(pid ProcessId, body Body[M]) {
	if _, exists := t.slots[pid]; exists {
		panic(fatalErrorf("duplicate process id %d", pid))
	}
	next, stop := iter.Pull(iter.Seq[Effect[M]](body))
	t.slots[pid] = &processSlot[M]{live: &process[M]{next: next, stop: stop}}
}

// resume drives pid's body to its next suspension point. It panics if pid
// was never registered, or if it has already completed (a tombstone).
//
// It returns the yielded Effect and true, or the zero Effect and false if
// the body has just completed (in which case the slot is tombstoned before
// returning).
func (t *processTable[M]) resume(pid ProcessId) (Effect[M], bool) {
	slot, ok := t.slots[pid]
	if !ok {
		panic(fatalErrorf("no such process %d", pid))
	}
	if slot.tombstoned {
		panic(fatalErrorf("process %d already completed", pid))
	}
	effect, ok := slot.live.next()
	if !ok {
		// The Body returned: release the iterator and tombstone the slot,
		// keeping it around only to detect future stale references.
		slot.live.stop()
		slot.live = nil
		slot.tombstoned = true
		return Effect[M]{}, false
	}
	return effect, true
}

// completed reports whether pid has already finished. ScheduleEvent and
// dispatch do not consult it: an event for a completed process is only
// detected when resume reaches it.
func (t *processTable[M]) completed(pid ProcessId) bool {
	slot, ok := t.slots[pid]
	return ok && slot.tombstoned
}

// registered reports whether pid was ever created.
func (t *processTable[M]) registered(pid ProcessId) bool {
	_, ok := t.slots[pid]
	return ok
}

// closeAll stops every still-live process's underlying iterator, releasing
// its goroutine. Intended for Kernel.Close, when a simulation is abandoned
// with processes still suspended on Wait.
func (t *processTable[M]) closeAll() {
	for _, slot := range t.slots {
		if slot.live != nil {
			slot.live.stop()
		}
	}
}
