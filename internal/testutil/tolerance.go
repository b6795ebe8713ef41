package testutil

import (
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t unless got and want have the same length
// and every pair differs by at most eps.
func RequireSliceNearlyEqual[T float32 | float64](t testing.TB, got, want []T, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("len(got)=%d want=%d", len(got), len(want))
	}
	for i := range got {
		if d := math.Abs(float64(got[i]) - float64(want[i])); d > eps {
			t.Fatalf("[%d] got=%v want=%v |diff|=%v > %v", i, got[i], want[i], d, eps)
		}
	}
}

// RequireWithin fails t if any sample is non-finite or outside [lo, hi].
func RequireWithin(t testing.TB, data []float32, lo, hi float32) {
	t.Helper()
	for i, v := range data {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			t.Fatalf("[%d] non-finite value %v", i, v)
		}
		if v < lo || v > hi {
			t.Fatalf("[%d] %v outside [%v, %v]", i, v, lo, hi)
		}
	}
}
