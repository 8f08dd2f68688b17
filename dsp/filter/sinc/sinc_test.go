package sinc

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-wavelet/internal/testutil"
)

func TestKernelUnitSum(t *testing.T) {
	kernel, err := Kernel(64, 0.1)
	if err != nil {
		t.Fatalf("Kernel() error: %v", err)
	}

	if len(kernel) != 65 {
		t.Fatalf("len = %d, want 65", len(kernel))
	}

	sum := 0.0
	for _, v := range kernel {
		sum += v
	}
	if math.Abs(sum-1) > 1e-12 {
		t.Fatalf("kernel sum = %v, want 1", sum)
	}
}

func TestKernelSymmetry(t *testing.T) {
	kernel, err := Kernel(40, 0.2)
	if err != nil {
		t.Fatalf("Kernel() error: %v", err)
	}

	for i := 0; i < len(kernel)/2; i++ {
		if math.Abs(kernel[i]-kernel[len(kernel)-1-i]) > 1e-12 {
			t.Fatalf("asymmetry at %d: %v vs %v", i, kernel[i], kernel[len(kernel)-1-i])
		}
	}
}

func TestKernelValidation(t *testing.T) {
	tests := []struct {
		name   string
		m      int
		cutoff float64
		want   error
	}{
		{name: "odd m", m: 11, cutoff: 0.1, want: ErrOddLength},
		{name: "zero m", m: 0, cutoff: 0.1, want: ErrInvalidLength},
		{name: "negative m", m: -2, cutoff: 0.1, want: ErrInvalidLength},
		{name: "zero cutoff", m: 10, cutoff: 0, want: ErrInvalidCutoff},
		{name: "cutoff above nyquist", m: 10, cutoff: 0.6, want: ErrInvalidCutoff},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Kernel(tt.m, tt.cutoff); err != tt.want {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDetrendRoundTrip(t *testing.T) {
	n := 300
	signal := make([]float64, n)
	for i := range signal {
		x := float64(i)
		signal[i] = 3*math.Sin(2*math.Pi*x/40) + 0.02*x
	}

	trend, err := Trend(signal, 200, 1)
	if err != nil {
		t.Fatalf("Trend() error: %v", err)
	}

	detrended, err := Detrend(signal, 200, 1)
	if err != nil {
		t.Fatalf("Detrend() error: %v", err)
	}

	testutil.RequireFinite(t, trend)

	sum := make([]float64, n)
	for i := range signal {
		sum[i] = trend[i] + detrended[i]
	}
	testutil.RequireSliceNearlyEqual(t, sum, signal, 1e-9)
}

func TestTrendRecoversSlowDrift(t *testing.T) {
	n := 500
	signal := make([]float64, n)
	drift := make([]float64, n)
	for i := range signal {
		x := float64(i)
		drift[i] = 0.01 * x
		signal[i] = drift[i] + 2*math.Sin(2*math.Pi*x/25)
	}

	trend, err := Trend(signal, 100, 1)
	if err != nil {
		t.Fatalf("Trend() error: %v", err)
	}

	// Away from the boundaries the trend should track the drift, with the
	// fast oscillation filtered out.
	for i := n / 4; i < 3*n/4; i++ {
		if math.Abs(trend[i]-drift[i]) > 0.2 {
			t.Fatalf("index %d: trend %v, drift %v", i, trend[i], drift[i])
		}
	}
}

func TestTrendConstantSignal(t *testing.T) {
	signal := make([]float64, 100)
	for i := range signal {
		signal[i] = 7
	}

	trend, err := Trend(signal, 30, 1)
	if err != nil {
		t.Fatalf("Trend() error: %v", err)
	}

	for i, v := range trend {
		if math.Abs(v-7) > 1e-9 {
			t.Fatalf("index %d: got %v, want 7", i, v)
		}
	}
}

func TestTrendKernelLengthOption(t *testing.T) {
	signal := make([]float64, 200)
	for i := range signal {
		signal[i] = math.Sin(0.1 * float64(i))
	}

	if _, err := Trend(signal, 50, 1, WithKernelLength(31)); err != ErrOddLength {
		t.Fatalf("err = %v, want ErrOddLength", err)
	}

	trend, err := Trend(signal, 50, 1, WithKernelLength(60))
	if err != nil {
		t.Fatalf("Trend() error: %v", err)
	}
	if len(trend) != len(signal) {
		t.Fatalf("len = %d, want %d", len(trend), len(signal))
	}
}

func TestTrendErrors(t *testing.T) {
	if _, err := Trend(nil, 10, 1); err != ErrEmptySignal {
		t.Fatalf("err = %v, want ErrEmptySignal", err)
	}
	if _, err := Trend([]float64{1, 2, 3}, 10, 0); err != ErrInvalidDt {
		t.Fatalf("err = %v, want ErrInvalidDt", err)
	}
	// Cutoff period below Nyquist maps to a relative cutoff above 0.5.
	if _, err := Trend(make([]float64, 100), 1.5, 1); err != ErrInvalidCutoff {
		t.Fatalf("err = %v, want ErrInvalidCutoff", err)
	}
}
