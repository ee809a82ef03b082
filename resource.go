package desim

// resource is a finite counting semaphore: capacity units total, available
// currently free, and waiters a strictly FIFO queue of processes blocked on
// Request. The invariant available+held==capacity is maintained implicitly:
// held is never tracked directly, only available and capacity are.
type resource struct {
	capacity  int
	available int
	waiters   []ProcessId
}

// resourceTable holds every resource created via Kernel.CreateResource, in
// registration order; ResourceId is simply the index.
type resourceTable struct {
	resources []*resource
}

// create registers a new resource with the given capacity, fully available,
// and returns its densely-allocated id.
func (t *resourceTable) create(capacity int) ResourceId {
	t.resources = append(t.resources, &resource{capacity: capacity, available: capacity})
	return ResourceId(len(t.resources) - 1)
}

func (t *resourceTable) get(rid ResourceId) *resource {
	if int(rid) < 0 || int(rid) >= len(t.resources) {
		panic(fatalErrorf("no such resource %d", rid))
	}
	return t.resources[rid]
}

// request attempts to acquire one unit of r for pid. If a unit is free, it
// reports true (grant immediate) and decrements available. Otherwise pid is
// appended to the FIFO waiter queue and false is returned: the caller must
// not reschedule pid, since only a future Release will do so.
func (r *resource) request(pid ProcessId) (granted bool) {
	if r.available > 0 {
		r.available--
		return true
	}
	r.waiters = append(r.waiters, pid)
	return false
}

// release gives back the releaser's unit. If a waiter is queued, the unit
// is handed directly to the front waiter (it is returned as the
// ProcessId to resume, with ok true) without ever incrementing available —
// this is the "hand-off" spec.md requires, which prevents a newly arriving
// requester from barging ahead of an already-queued waiter at the same
// instant. If no waiter is queued, available is incremented, and ok is
// false.
//
// Releasing beyond capacity (available already == capacity, with no
// waiters) is a fatal kernel error: it indicates more releases than
// requests for this resource.
func (r *resource) release() (woken ProcessId, ok bool) {
	if len(r.waiters) > 0 {
		woken, r.waiters = r.waiters[0], r.waiters[1:]
		return woken, true
	}
	if r.available >= r.capacity {
		panic(fatalErrorf("resource released beyond capacity (capacity=%d)", r.capacity))
	}
	r.available++
	return 0, false
}
