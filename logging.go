package desim

import (
	"io"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

// NewDefaultLogger builds the logiface.Logger[logiface.Event] Config.Logger
// expects, backed by stumpy as a line-delimited JSON writer to w — the same
// wiring the teacher's own packages use when they want a concrete default
// logger rather than leaving Logger nil (see logiface-stumpy/example_test.go:
// `stumpy.L.New(stumpy.L.WithStumpy(...), ...).Logger()`). Passing a nil w is
// equivalent to os.Stderr, per stumpy.WithStumpy's own default.
func NewDefaultLogger(w io.Writer) *logiface.Logger[logiface.Event] {
	return stumpy.L.New(stumpy.L.WithStumpy(stumpy.WithWriter(w))).Logger()
}

// logEffectKind renders an effectKind as a short, stable field value for
// structured logs.
func logEffectKind(k effectKind) string {
	switch k {
	case effectTimeout:
		return "timeout"
	case effectEvent:
		return "event"
	case effectRequest:
		return "request"
	case effectRelease:
		return "release"
	case effectWait:
		return "wait"
	case effectInterrupt:
		return "interrupt"
	case effectSendMessage:
		return "send_message"
	default:
		return "unknown"
	}
}

// logStep emits one Debug record per processed event, mirroring
// sql/export.Exporter's x.Logger.Debug().Log(...) bracketing of each unit of
// work. logger may be nil: *logiface.Logger[logiface.Event] is documented as
// nil-safe (see logiface/logger.go's `x == nil || x.shared == nil` guard),
// so this costs one no-op call when observability is not configured.
func logStep(logger *logiface.Logger[logiface.Event], e Event, kind effectKind, completed bool) {
	b := logger.Debug()
	b = b.Float64(`time`, e.Time).Int(`pid`, int(e.Process))
	if completed {
		b.Str(`outcome`, `completed`).Log(`process completed`)
		return
	}
	b.Str(`effect`, logEffectKind(kind)).Log(`step processed`)
}

// logFatal emits an Err record immediately before a FatalError panic
// unwinds, so the condition is observable even though the kernel's state is
// undefined from this point on (spec.md §7: "surfaces fatal errors
// immediately at the point of detection").
func logFatal(logger *logiface.Logger[logiface.Event], err FatalError) {
	logger.Err().Str(`error`, err.Error()).Log(`fatal kernel error`)
}
