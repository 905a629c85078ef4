package starward

import (
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

const angleε = 5e-3 // degrees

func assertPanic(t *testing.T, f func()) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("code did not panic")
		}
	}()
	f()
}

func vectorsEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if !scalar.EqualWithinRel(a[i], b[i], 1e-3) {
			return false
		}
	}
	return true
}

func anglesEqual(a, b float64) (bool, error) {
	diff := math.Mod(math.Abs(a-b), 360)
	if diff < angleε || 360-diff < angleε {
		return true, nil
	}
	return false, fmt.Errorf("difference of %3.10f degrees", math.Abs(a-b))
}

// recordingTracer keeps every step for inspection.
type recordingTracer struct {
	labels  []string
	details []string
}

func (r *recordingTracer) Trace(label, detail string) {
	r.labels = append(r.labels, label)
	r.details = append(r.details, detail)
}

func (r *recordingTracer) count(label string) int {
	n := 0
	for _, l := range r.labels {
		if l == label {
			n++
		}
	}
	return n
}
