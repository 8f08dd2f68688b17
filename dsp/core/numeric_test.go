package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min      float64
		max      float64
		expected float64
	}{
		{name: "inside", value: 0.5, min: 0, max: 1, expected: 0.5},
		{name: "below", value: -1, min: 0, max: 1, expected: 0},
		{name: "above", value: 2, min: 0, max: 1, expected: 1},
		{name: "swapped", value: 2, min: 1, max: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.value, tt.min, tt.max)
			if got != tt.expected {
				t.Fatalf("Clamp() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values to be nearly equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-3) {
		t.Fatal("expected values to differ")
	}
}

func TestMeanVariance(t *testing.T) {
	data := []float64{1, 2, 3, 4}

	if got := Mean(data); !NearlyEqual(got, 2.5, 1e-12) {
		t.Fatalf("Mean() = %v, want 2.5", got)
	}

	// Population variance: sum((x-2.5)^2)/4 = 1.25.
	if got := Variance(data); !NearlyEqual(got, 1.25, 1e-12) {
		t.Fatalf("Variance() = %v, want 1.25", got)
	}

	if got := StdDev(data); !NearlyEqual(got, math.Sqrt(1.25), 1e-12) {
		t.Fatalf("StdDev() = %v, want %v", got, math.Sqrt(1.25))
	}
}

func TestMeanVarianceEmpty(t *testing.T) {
	if got := Mean(nil); got != 0 {
		t.Fatalf("Mean(nil) = %v, want 0", got)
	}
	if got := Variance(nil); got != 0 {
		t.Fatalf("Variance(nil) = %v, want 0", got)
	}
}

func TestDemean(t *testing.T) {
	data := []float64{1, 2, 3}
	out := Demean(data)

	if !NearlyEqual(Mean(out), 0, 1e-12) {
		t.Fatalf("Demean() mean = %v, want 0", Mean(out))
	}

	// Input untouched.
	if data[0] != 1 || data[2] != 3 {
		t.Fatal("Demean mutated its input")
	}
}

func TestZero(t *testing.T) {
	buf := []float64{1, -2, 3}
	Zero(buf)

	for i, v := range buf {
		if v != 0 {
			t.Fatalf("buf[%d] = %v, want 0", i, v)
		}
	}
}

func TestTimeVector(t *testing.T) {
	tv := TimeVector(4, 0.5)
	want := []float64{0, 0.5, 1, 1.5}

	if len(tv) != len(want) {
		t.Fatalf("len = %d, want %d", len(tv), len(want))
	}
	for i := range tv {
		if tv[i] != want[i] {
			t.Fatalf("TimeVector[%d] = %v, want %v", i, tv[i], want[i])
		}
	}

	if TimeVector(0, 1) != nil {
		t.Fatal("expected nil for n=0")
	}
}
