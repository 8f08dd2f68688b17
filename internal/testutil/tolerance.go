package testutil

import (
	"math"
	"testing"
)

// worstDeviation returns the index and size of the largest absolute
// difference between got and want. Both slices must have equal length.
func worstDeviation(got, want []float64) (int, float64) {
	idx, worst := -1, 0.0
	for i := range got {
		if d := math.Abs(got[i] - want[i]); d > worst || idx < 0 {
			idx, worst = i, d
		}
	}
	return idx, worst
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair differs by more than eps, reporting the worst offender.
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	if idx, worst := worstDeviation(got, want); worst > eps {
		t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)",
			idx, got[idx], want[idx], worst, eps)
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireNonNegative fails t if any element is negative, NaN or Inf.
// Power spectra and amplitude envelopes use this as a basic sanity gate.
func RequireNonNegative(t *testing.T, data []float64) {
	t.Helper()
	RequireFinite(t, data)
	for i, v := range data {
		if v < 0 {
			t.Fatalf("index %d: negative value %v", i, v)
		}
	}
}
