// Package sinc implements a windowed-sinc low-pass filter used to separate
// slow trends from oscillatory signals.
//
// The trend is the low-pass filtered signal; subtracting it from the input
// yields the detrended signal. The filter kernel is a Blackman-windowed
// sinc normalized to unit sum, and convolution uses reflected boundary
// extension so the trend keeps the input length with reduced edge
// artifacts.
package sinc

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-wavelet/dsp/smooth"
	"github.com/cwbudde/algo-wavelet/dsp/window"
)

// Errors returned by the sinc filter.
var (
	ErrEmptySignal   = errors.New("sinc: empty signal")
	ErrOddLength     = errors.New("sinc: kernel length parameter must be even")
	ErrInvalidLength = errors.New("sinc: kernel length parameter must be positive")
	ErrInvalidCutoff = errors.New("sinc: relative cutoff must be in (0, 0.5]")
	ErrInvalidDt     = errors.New("sinc: sampling interval must be positive")
	ErrSignalTooLong = errors.New("sinc: kernel length exceeds signal length")
)

// Option configures trend extraction.
type Option func(*config)

type config struct {
	kernelLen int
}

// WithKernelLength overrides the filter length parameter M (must be even;
// the kernel has M+1 taps). The default is len(signal)-1 floored to even,
// the maximum for the sharpest roll-off.
func WithKernelLength(m int) Option {
	return func(c *config) {
		c.kernelLen = m
	}
}

// Kernel returns the M+1 coefficients of a Blackman-windowed sinc low-pass
// with the given relative cutoff frequency (in sampling-frequency units,
// at most 0.5). M must be even so the kernel is symmetric around a center
// tap. The coefficients are normalized to unit sum.
func Kernel(m int, cutoff float64) ([]float64, error) {
	if m <= 0 {
		return nil, ErrInvalidLength
	}
	if m%2 != 0 {
		return nil, ErrOddLength
	}
	if cutoff <= 0 || cutoff > 0.5 {
		return nil, ErrInvalidCutoff
	}

	taper := window.Generate(window.TypeBlackman, m+1)
	out := make([]float64, m+1)
	center := m / 2

	for x := range out {
		if x == center {
			// sin(2*pi*fc*t)/t -> 2*pi*fc as t -> 0.
			out[x] = 2 * math.Pi * cutoff
			continue
		}

		t := float64(x - center)
		out[x] = math.Sin(2*math.Pi*cutoff*t) / t * taper[x]
	}

	sum := 0.0
	for _, v := range out {
		sum += v
	}
	for i := range out {
		out[i] /= sum
	}

	return out, nil
}

// Trend low-pass filters the signal with cutoff period cutoffPeriod (same
// time units as dt), returning a trend of the same length.
func Trend(signal []float64, cutoffPeriod, dt float64, opts ...Option) ([]float64, error) {
	if len(signal) == 0 {
		return nil, ErrEmptySignal
	}
	if dt <= 0 {
		return nil, ErrInvalidDt
	}

	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	m := cfg.kernelLen
	if m == 0 {
		m = len(signal) - 1
		if m%2 != 0 {
			m--
		}
	}
	if m+1 > len(signal) {
		return nil, ErrSignalTooLong
	}

	kernel, err := Kernel(m, dt/cutoffPeriod)
	if err != nil {
		return nil, err
	}

	return smooth.WithKernel(signal, kernel)
}

// Detrend subtracts the sinc trend from the signal.
func Detrend(signal []float64, cutoffPeriod, dt float64, opts ...Option) ([]float64, error) {
	trend, err := Trend(signal, cutoffPeriod, dt, opts...)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(signal))
	for i := range signal {
		out[i] = signal[i] - trend[i]
	}

	return out, nil
}
