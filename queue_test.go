package desim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventQueue_OrdersByTimeThenInsertionOrder(t *testing.T) {
	var q eventQueue
	q.push(Event{Time: 5, Process: 1})
	q.push(Event{Time: 1, Process: 2})
	q.push(Event{Time: 1, Process: 3})
	q.push(Event{Time: 1, Process: 4})
	q.push(Event{Time: 3, Process: 5})

	var got []ProcessId
	for q.size() > 0 {
		e, ok := q.pop()
		assert.True(t, ok)
		got = append(got, e.Process)
	}

	assert.Equal(t, []ProcessId{2, 3, 4, 5, 1}, got)
}

func TestEventQueue_PopOnEmptyReportsFalse(t *testing.T) {
	var q eventQueue
	_, ok := q.pop()
	assert.False(t, ok)
}

func TestEventQueue_Size(t *testing.T) {
	var q eventQueue
	assert.Equal(t, 0, q.size())
	q.push(Event{Time: 1, Process: 1})
	q.push(Event{Time: 2, Process: 2})
	assert.Equal(t, 2, q.size())
	_, _ = q.pop()
	assert.Equal(t, 1, q.size())
}
