package starward

import (
	"fmt"
	"io"

	kitlog "github.com/go-kit/kit/log"
)

// Tracer receives a labeled snapshot of each stage of a computation. The
// detail may span several lines. A tracer only observes: results are the
// same whether one is attached or not.
type Tracer interface {
	Trace(label, detail string)
}

// TracerFunc adapts a plain function to the Tracer interface.
type TracerFunc func(label, detail string)

// Trace implements the Tracer interface.
func (f TracerFunc) Trace(label, detail string) {
	f(label, detail)
}

// NewLogTracer returns a Tracer writing each step as a logfmt record to w.
// Multiline details end up as a single quoted value.
func NewLogTracer(w io.Writer) Tracer {
	return logTracer{kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(w))}
}

type logTracer struct {
	l kitlog.Logger
}

func (t logTracer) Trace(label, detail string) {
	t.l.Log("step", label, "detail", detail)
}

// trace formats and forwards one step to tr. A nil tr drops the step.
func trace(tr Tracer, label, format string, a ...interface{}) {
	if tr == nil {
		return
	}
	tr.Trace(label, fmt.Sprintf(format, a...))
}
