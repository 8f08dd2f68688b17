package testutil

import (
	"math"
	"testing"
)

func TestWorstDeviation(t *testing.T) {
	got := []float64{1.0, 2.0, 3.5, 4.0}
	want := []float64{1.0, 2.1, 3.0, 4.0}

	idx, worst := worstDeviation(got, want)
	if idx != 2 {
		t.Fatalf("idx = %d, want 2", idx)
	}
	if math.Abs(worst-0.5) > 1e-15 {
		t.Fatalf("worst = %v, want 0.5", worst)
	}
}

func TestWorstDeviationIdentical(t *testing.T) {
	a := []float64{1, 2, 3}

	idx, worst := worstDeviation(a, a)
	if worst != 0 {
		t.Fatalf("worst = %v, want 0 for identical slices", worst)
	}
	if idx != 0 {
		t.Fatalf("idx = %d, want 0 for identical slices", idx)
	}
}

func TestRequireHelpersAcceptValidData(t *testing.T) {
	RequireSliceNearlyEqual(t, []float64{1, 2}, []float64{1, 2 + 1e-13}, 1e-12)
	RequireFinite(t, []float64{-1, 0, 1e300})
	RequireNonNegative(t, []float64{0, 1, 2.5})
}
