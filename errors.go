package desim

import "fmt"

// FatalError is the panic value raised for every scenario-authoring error
// spec.md §7 names as fatal and abort-the-simulation: duplicate ProcessId
// registration, Release beyond capacity, resuming a completed process, and
// an event scheduled with a NaN time. The kernel's state is undefined after
// one of these escapes a Step or Run call; per §7, there is no partial
// recovery, so FatalError is raised with panic rather than returned as an
// error — the same convention the teacher's microbatch package uses for its
// own configuration-bug class of failure (panic("microbatch: nil
// processor")).
type FatalError struct {
	msg string
}

func (e FatalError) Error() string {
	return "desim: " + e.msg
}

func fatalErrorf(format string, args ...any) FatalError {
	return FatalError{msg: fmt.Sprintf(format, args...)}
}
