package desim_test

import (
	"fmt"
	"testing"

	"github.com/joeycumines/desim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ExampleKernel demonstrates the minimal shape of a simulation: one process,
// one externally-seeded event, stepped to completion.
func ExampleKernel() {
	ctx := desim.NewContext[string]()
	k := desim.NewKernel[string](ctx, nil)

	k.CreateProcess(1, func(yield func(desim.Effect[string]) bool) {
		fmt.Printf("running at %.1f\n", ctx.Time())
		if !yield(desim.Timeout[string](2)) {
			return
		}
		fmt.Printf("resumed at %.1f\n", ctx.Time())
	})
	k.ScheduleEvent(desim.Event{Time: 0, Process: 1})

	k.Run(desim.NoEvents())

	// Output:
	// running at 0.0
	// resumed at 2.0
}

// TestScenario1_AccumulatingTimeouts is spec.md §8 end-to-end scenario 1.
func TestScenario1_AccumulatingTimeouts(t *testing.T) {
	ctx := desim.NewContext[struct{}]()
	k := desim.NewKernel[struct{}](ctx, nil)

	delta := 0.0
	k.CreateProcess(1, func(yield func(desim.Effect[struct{}]) bool) {
		for {
			delta++
			if !yield(desim.Timeout[struct{}](delta)) {
				return
			}
		}
	})
	k.ScheduleEvent(desim.Event{Time: 0, Process: 1})

	k.Step()
	assert.Equal(t, 0.0, k.Clock(), "after 1 step")

	k.Step()
	assert.Equal(t, 1.0, k.Clock(), "after 2 steps")

	k.Step()
	assert.Equal(t, 3.0, k.Clock(), "after 3 steps")

	k.Step()
	assert.Equal(t, 6.0, k.Clock(), "after 4 steps")
}

// TestScenario2_RunUntilTime is spec.md §8 end-to-end scenario 2.
func TestScenario2_RunUntilTime(t *testing.T) {
	ctx := desim.NewContext[struct{}]()
	k := desim.NewKernel[struct{}](ctx, nil)

	k.CreateProcess(1, func(yield func(desim.Effect[struct{}]) bool) {
		for {
			if !yield(desim.Timeout[struct{}](0.7)) {
				return
			}
		}
	})
	k.ScheduleEvent(desim.Event{Time: 0, Process: 1})

	k.Run(desim.UntilTime(10.0))

	assert.GreaterOrEqual(t, k.Clock(), 10.0)
	assert.Less(t, k.Clock(), 10.7)
}

// TestScenario3_ContendedResource is spec.md §8 end-to-end scenario 3.
func TestScenario3_ContendedResource(t *testing.T) {
	ctx := desim.NewContext[struct{}]()
	k := desim.NewKernel[struct{}](ctx, nil)
	r := k.CreateResource(1)

	k.CreateProcess(1, func(yield func(desim.Effect[struct{}]) bool) {
		if !yield(desim.Request[struct{}](r)) {
			return
		}
		if !yield(desim.Timeout[struct{}](7)) {
			return
		}
		yield(desim.Release[struct{}](r))
	})
	k.CreateProcess(2, func(yield func(desim.Effect[struct{}]) bool) {
		if !yield(desim.Request[struct{}](r)) {
			return
		}
		if !yield(desim.Timeout[struct{}](3)) {
			return
		}
		yield(desim.Release[struct{}](r))
	})

	k.ScheduleEvent(desim.Event{Time: 0, Process: 1})
	k.ScheduleEvent(desim.Event{Time: 2, Process: 2})

	k.Run(desim.NoEvents())

	assert.Equal(t, 10.0, k.Clock())
}

// TestScenario4_Interrupt is spec.md §8 end-to-end scenario 4.
func TestScenario4_Interrupt(t *testing.T) {
	ctx := desim.NewContext[struct{}]()
	k := desim.NewKernel[struct{}](ctx, nil)

	k.CreateProcess(1, func(yield func(desim.Effect[struct{}]) bool) {
		if !yield(desim.Timeout[struct{}](1)) {
			return
		}
		assert.Equal(t, 1.0, ctx.Time())
		assert.False(t, ctx.CheckInterrupted(1))

		if !yield(desim.Timeout[struct{}](1)) {
			return
		}
		assert.InDelta(t, 1.1, ctx.Time(), 1e-9)
		assert.True(t, ctx.CheckInterrupted(1))
	})
	k.CreateProcess(2, func(yield func(desim.Effect[struct{}]) bool) {
		if !yield(desim.Timeout[struct{}](1.1)) {
			return
		}
		yield(desim.Interrupt[struct{}](1))
	})

	k.ScheduleEvent(desim.Event{Time: 0, Process: 1})
	k.ScheduleEvent(desim.Event{Time: 0, Process: 2})

	for i := 0; i < 6; i++ {
		k.Step()
	}
}

// TestScenario5_Messaging is spec.md §8 end-to-end scenario 5.
func TestScenario5_Messaging(t *testing.T) {
	ctx := desim.NewContext[string]()
	k := desim.NewKernel[string](ctx, nil)

	k.CreateProcess(1, func(yield func(desim.Effect[string]) bool) {
		if !yield(desim.Wait[string]()) {
			return
		}
		require.Equal(t, 1.2, ctx.Time())

		m1, ok := ctx.PopMessage(1)
		require.True(t, ok)
		assert.Equal(t, "hello", m1)

		_, ok = ctx.PopMessage(1)
		assert.False(t, ok)
	})
	k.CreateProcess(2, func(yield func(desim.Effect[string]) bool) {
		if !yield(desim.Timeout[string](1.0)) {
			return
		}
		yield(desim.SendMessage[string](1, "hello", 0.2))
	})

	k.ScheduleEvent(desim.Event{Time: 0, Process: 1})
	k.ScheduleEvent(desim.Event{Time: 0, Process: 2})

	for i := 0; i < 5; i++ {
		k.Step()
	}
}

// TestScenario6_ReleaseWithNoWaiters is spec.md §8 end-to-end scenario 6.
func TestScenario6_ReleaseWithNoWaiters(t *testing.T) {
	ctx := desim.NewContext[struct{}]()
	k := desim.NewKernel[struct{}](ctx, nil)
	r := k.CreateResource(2)

	k.CreateProcess(1, func(yield func(desim.Effect[struct{}]) bool) {
		if !yield(desim.Request[struct{}](r)) {
			return
		}
		yield(desim.Release[struct{}](r))
	})
	k.ScheduleEvent(desim.Event{Time: 0, Process: 1})

	k.Run(desim.NoEvents())
}
