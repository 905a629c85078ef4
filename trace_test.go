package starward

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogTracer(t *testing.T) {
	var buf bytes.Buffer
	tr := NewLogTracer(&buf)
	tr.Trace("kepler", "E=42")
	tr.Trace("warning", "line one\nline two")
	out := buf.String()
	if !strings.Contains(out, "step=kepler") || !strings.Contains(out, "E=42") {
		t.Fatalf("unexpected logfmt output %q", out)
	}
	if strings.Count(out, "\n") != 2 {
		t.Fatalf("expected one record per step, got %q", out)
	}
	if !strings.Contains(out, "line one") {
		t.Fatalf("multiline detail lost: %q", out)
	}
}

func TestTracerFunc(t *testing.T) {
	var got []string
	tr := TracerFunc(func(label, detail string) {
		got = append(got, label+":"+detail)
	})
	trace(tr, "rise", "H=%.1f", 42.0)
	if len(got) != 1 || got[0] != "rise:H=42.0" {
		t.Fatalf("unexpected steps %v", got)
	}
}

func TestTraceNil(t *testing.T) {
	trace(nil, "set", "dropped")
	var tr Tracer
	trace(tr, "set", "dropped too")
}
