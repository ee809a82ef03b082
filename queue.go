package desim

import "container/heap"

// eventQueue is a min-priority queue of scheduledEvent, ordered by
// (Time, seq). It implements heap.Interface the same way
// eventloop.timerHeap does (a slice type with Len/Less/Swap/Push/Pop, driven
// through the package-level heap.Push/heap.Pop functions), generalized with
// the sequence-number tie-break spec.md calls for: "pair each event with an
// insertion counter as a secondary key."
type eventQueue struct {
	items   []scheduledEvent
	nextSeq uint64
}

func (q *eventQueue) Len() int { return len(q.items) }

func (q *eventQueue) Less(i, j int) bool {
	a, b := q.items[i], q.items[j]
	if a.Time != b.Time {
		return a.Time < b.Time
	}
	return a.seq < b.seq
}

func (q *eventQueue) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
}

func (q *eventQueue) Push(x any) {
	q.items = append(q.items, x.(scheduledEvent))
}

func (q *eventQueue) Pop() any {
	old := q.items
	n := len(old)
	x := old[n-1]
	old[n-1] = scheduledEvent{}
	q.items = old[:n-1]
	return x
}

// push schedules e, stamping it with the next sequence number, and restores
// the heap invariant.
func (q *eventQueue) push(e Event) {
	s := scheduledEvent{Event: e, seq: q.nextSeq}
	q.nextSeq++
	heap.Push(q, s)
}

// pop removes and returns the earliest-scheduled event. ok is false if the
// queue is empty.
func (q *eventQueue) pop() (Event, bool) {
	if q.Len() == 0 {
		return Event{}, false
	}
	s := heap.Pop(q).(scheduledEvent)
	return s.Event, true
}

func (q *eventQueue) size() int {
	return q.Len()
}
