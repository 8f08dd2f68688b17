// Package envelope estimates amplitude envelopes of oscillatory signals
// with a sliding min/max window, and normalizes signals by their envelope.
//
// Envelope normalization equalizes amplitude drift before spectral
// analysis, so power along a wavelet ridge reflects oscillation quality
// rather than slow amplitude modulation.
package envelope

import (
	"errors"

	"github.com/cwbudde/algo-wavelet/dsp/core"
	"github.com/cwbudde/algo-wavelet/dsp/smooth"
)

// Errors returned by the envelope functions.
var (
	ErrEmptySignal    = errors.New("envelope: empty signal")
	ErrInvalidWindow  = errors.New("envelope: window size must be positive")
	ErrSignalTooShort = errors.New("envelope: signal shorter than window")
)

// SlidingAmplitude estimates the amplitude envelope as (max-min)/2 over a
// centered window of windowSize samples (forced odd). The half-window at
// each boundary uses a shrinking one-sided window anchored at the array
// edge, so the envelope is defined over the full signal length.
//
// With smoothing enabled the envelope is additionally filtered with a
// Savitzky-Golay filter of order 3 and the same window length.
func SlidingAmplitude(signal []float64, windowSize int, smoothEnvelope bool) ([]float64, error) {
	if len(signal) == 0 {
		return nil, ErrEmptySignal
	}
	if windowSize <= 0 {
		return nil, ErrInvalidWindow
	}

	if windowSize%2 == 0 {
		windowSize++
	}
	if windowSize > len(signal) {
		return nil, ErrSignalTooShort
	}

	n := len(signal)
	half := windowSize / 2
	out := make([]float64, n)

	rangeOver := func(lo, hi int) float64 {
		min, max := signal[lo], signal[lo]
		for _, v := range signal[lo+1 : hi] {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
		return (max - min) / 2
	}

	// Left boundary: windows grow from half+1 samples, anchored at index 0.
	for i := 0; i < half; i++ {
		out[i] = rangeOver(0, half+1+i)
	}

	for i := half; i < n-half; i++ {
		out[i] = rangeOver(i-half, i+half+1)
	}

	// Right boundary: shrinking windows anchored at the last sample.
	for i := n - half; i < n; i++ {
		j := i - (n - half)
		out[i] = rangeOver(n-2*half+j, n)
	}

	if smoothEnvelope {
		smoothed, err := smooth.SavitzkyGolay(out, windowSize, 3)
		if err != nil {
			return nil, err
		}
		out = smoothed
	}

	return out, nil
}

// Normalize divides the signal by its sliding-window amplitude envelope.
// The envelope is estimated on the mean-subtracted signal; the division is
// applied to the input as given. Detrend beforehand for best results.
//
// Constant signals produce a zero envelope and the division is not
// guarded; avoiding that input is the caller's responsibility.
func Normalize(signal []float64, windowSize int) ([]float64, error) {
	if len(signal) == 0 {
		return nil, ErrEmptySignal
	}

	env, err := SlidingAmplitude(core.Demean(signal), windowSize, true)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(signal))
	for i := range signal {
		out[i] = signal[i] / env[i]
	}

	return out, nil
}
