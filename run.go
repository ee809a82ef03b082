package desim

// EndCondition tells Run when to stop stepping a Kernel. Construct one with
// UntilTime, NoEvents, or NSteps.
type EndCondition struct {
	kind endConditionKind
	t    float64
	n    int
}

type endConditionKind int

const (
	endUntilTime endConditionKind = iota
	endNoEvents
	endNSteps
)

// UntilTime stops Run as soon as the clock is >= t, checked before each
// Step — a single Step may therefore overshoot t by as much as the Δ of the
// effect that produced the event straddling it.
func UntilTime(t float64) EndCondition {
	return EndCondition{kind: endUntilTime, t: t}
}

// NoEvents stops Run once the event queue is empty.
func NoEvents() EndCondition {
	return EndCondition{kind: endNoEvents}
}

// NSteps stops Run once the processed-events log reaches length n.
//
// This compares against the ABSOLUTE length of ProcessedEvents, not a count
// of steps taken since this call to Run — a documented wart inherited
// unchanged from the original implementation (spec.md §4.7, §9): a caller
// that has already taken some Steps manually, then calls
// Run(NSteps(n)), will see fewer net steps than n - 0, because n is compared
// against the log's total length, not a delta captured at Run's entry.
func NSteps(n int) EndCondition {
	return EndCondition{kind: endNSteps, n: n}
}

func (k *Kernel[M]) endConditionMet(c EndCondition) bool {
	switch c.kind {
	case endUntilTime:
		return k.Clock() >= c.t
	case endNoEvents:
		return k.PendingEvents() == 0
	case endNSteps:
		return len(k.processedEvents) >= c.n
	default:
		return true
	}
}

// Run repeats Step until end holds, checked before each Step (so Run never
// performs a Step past the point the condition is already satisfied), and
// returns the Kernel itself for chaining.
func (k *Kernel[M]) Run(end EndCondition) *Kernel[M] {
	for !k.endConditionMet(end) {
		k.Step()
	}
	return k
}
