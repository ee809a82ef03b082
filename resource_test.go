package desim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResourceTable_CreateAllocatesDenseIds(t *testing.T) {
	var rt resourceTable
	a := rt.create(1)
	b := rt.create(3)
	assert.Equal(t, ResourceId(0), a)
	assert.Equal(t, ResourceId(1), b)
	assert.Equal(t, 1, rt.get(a).capacity)
	assert.Equal(t, 3, rt.get(b).capacity)
}

func TestResource_RequestGrantsImmediatelyWhenAvailable(t *testing.T) {
	r := &resource{capacity: 2, available: 2}
	assert.True(t, r.request(1))
	assert.Equal(t, 1, r.available)
	assert.Empty(t, r.waiters)
}

func TestResource_RequestQueuesWhenExhausted(t *testing.T) {
	r := &resource{capacity: 1, available: 0}
	assert.False(t, r.request(7))
	assert.Equal(t, []ProcessId{7}, r.waiters)
	assert.Equal(t, 0, r.available)
}

func TestResource_ReleaseHandsOffToFIFOWaiter(t *testing.T) {
	r := &resource{capacity: 1, available: 0, waiters: []ProcessId{1, 2}}
	woken, ok := r.release()
	assert.True(t, ok)
	assert.Equal(t, ProcessId(1), woken)
	// Hand-off: available never returns to the pool.
	assert.Equal(t, 0, r.available)
	assert.Equal(t, []ProcessId{2}, r.waiters)
}

func TestResource_ReleaseWithNoWaitersRestoresAvailability(t *testing.T) {
	r := &resource{capacity: 2, available: 1}
	_, ok := r.release()
	assert.False(t, ok)
	assert.Equal(t, 2, r.available)
}

func TestResource_ReleaseBeyondCapacityPanics(t *testing.T) {
	r := &resource{capacity: 1, available: 1}
	assert.PanicsWithValue(t, fatalErrorf("resource released beyond capacity (capacity=%d)", 1), func() {
		r.release()
	})
}
