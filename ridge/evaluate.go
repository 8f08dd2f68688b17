package ridge

import (
	"errors"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-wavelet/dsp/core"
	"github.com/cwbudde/algo-wavelet/dsp/smooth"
	"github.com/cwbudde/algo-wavelet/wavelet"
)

// Errors returned by the evaluation functions.
var (
	ErrRidgeMismatch  = errors.New("ridge: ridge length does not match spectrum")
	ErrTimeMismatch   = errors.New("ridge: time vector length does not match spectrum")
	ErrRowOutside     = errors.New("ridge: ridge row outside spectrum")
	ErrNoCOICrossing  = errors.New("ridge: ridge never crosses the cone of influence")
	ErrEmptyRidgeData = errors.New("ridge: empty ridge data")
)

// Data is the evaluated ridge readout. All slices have equal length; only
// time points whose ridge power exceeds the threshold are retained.
type Data struct {
	Time        []float64
	Periods     []float64
	Phase       []float64
	Amplitude   []float64
	Power       []float64
	Frequencies []float64
}

// Len returns the number of retained time points.
func (d *Data) Len() int {
	return len(d.Time)
}

// Empty reports whether no time point survived the power threshold.
func (d *Data) Empty() bool {
	return len(d.Time) == 0
}

// EvalOption configures Evaluate.
type EvalOption func(*evalConfig)

type evalConfig struct {
	threshold float64
	smoothing int
}

// WithPowerThreshold drops every time point whose ridge power is not
// strictly above the threshold.
func WithPowerThreshold(threshold float64) EvalOption {
	return func(c *evalConfig) {
		if threshold >= 0 {
			c.threshold = threshold
		}
	}
}

// WithSmoothing smooths the period trace with a cubic Savitzky-Golay
// filter of the given window length before thresholding. The window is
// shrunk to fit short ridges.
func WithSmoothing(windowLen int) EvalOption {
	return func(c *evalConfig) {
		if windowLen > 0 {
			c.smoothing = windowLen
		}
	}
}

// Evaluate turns a raw ridge into physical readouts along the trace.
//
// The ridge assigns one period row to every time column of the spectrum.
// For each retained column the output carries the instantaneous period,
// the wavelet phase folded into [0, 2pi), the variance-normalized power
// and an amplitude estimate following Lilly & Olhede (2010). sig must be
// the signal the spectrum was computed from; its standard deviation
// calibrates the amplitude.
func Evaluate(ridgeIdx []int, spec *wavelet.Spectrum, sig []float64, tvec []float64, omega0 float64, opts ...EvalOption) (*Data, error) {
	if len(ridgeIdx) != spec.NumTimes() {
		return nil, ErrRidgeMismatch
	}
	if len(tvec) != spec.NumTimes() {
		return nil, ErrTimeMismatch
	}

	cfg := evalConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	n := spec.NumTimes()
	variance := core.Variance(sig)
	std := math.Sqrt(variance)

	periods := make([]float64, n)
	power := make([]float64, n)
	values := make([]complex128, n)

	// Power is recomputed from the transform and the caller's signal
	// rather than read from the stored modulus, so a spectrum normalized
	// against a different signal cannot leak through.
	for t, row := range ridgeIdx {
		if row < 0 || row >= spec.NumPeriods() {
			return nil, ErrRowOutside
		}

		z := spec.Transform[row][t]
		periods[t] = spec.Periods[row]
		values[t] = z
		power[t] = (real(z)*real(z) + imag(z)*imag(z)) / variance
	}

	// Smoothing runs over the full trace so the fit window never sees a
	// gap introduced by thresholding.
	smoothed := periods
	if cfg.smoothing > 0 {
		windowLen := smooth.OddWindow(cfg.smoothing, n)

		var err error
		smoothed, err = smooth.SavitzkyGolay(periods, windowLen, 3)
		if err != nil {
			return nil, err
		}
	}

	out := &Data{}
	for t := 0; t < n; t++ {
		if !(power[t] > cfg.threshold) {
			continue
		}

		phase := math.Mod(cmplx.Phase(values[t]), 2*math.Pi)
		if phase < 0 {
			phase += 2 * math.Pi
		}

		// Amplitude calibration uses the raw period so smoothing never
		// shifts the scale factor.
		scale := wavelet.ScaleFromPeriod(periods[t], 1/spec.Dt, omega0)
		kappa := math.Pow(scale, -0.5) * math.Pow(math.Pi, -0.25) * std * math.Sqrt2

		out.Time = append(out.Time, tvec[t])
		out.Periods = append(out.Periods, smoothed[t])
		out.Phase = append(out.Phase, phase)
		out.Amplitude = append(out.Amplitude, math.Sqrt(power[t])*kappa)
		out.Power = append(out.Power, power[t])
		out.Frequencies = append(out.Frequencies, 1/smoothed[t])
	}

	return out, nil
}

// FindCOICrossing locates where the evaluated ridge crosses the cone of
// influence at either edge of the spectrum.
//
// It returns the index (into d) of the last point still outside the cone
// at the left edge, and of the first point outside the cone at the right
// edge. Points between the two are unaffected by edge effects.
func FindCOICrossing(d *Data, omega0 float64) (left, right int, err error) {
	if d.Empty() {
		return 0, 0, ErrEmptyRidgeData
	}

	slope := wavelet.COISlope(omega0)
	n := d.Len()

	left = -1
	for i := 0; i < n; i++ {
		if !(slope*d.Time[i] > d.Periods[i]) {
			left = i
		}
	}

	right = -1
	for i := 0; i < n; i++ {
		if slope*d.Time[n-1-i] < d.Periods[i] {
			right = i
			break
		}
	}

	if left < 0 || right < 0 {
		return 0, 0, ErrNoCOICrossing
	}

	return left, right, nil
}
