// Package spectrum provides reference spectra for wavelet analysis:
// the classical Fourier power spectrum of a signal and the theoretical
// spectrum of an AR(1) background process, plus an AR(1) simulator for
// building empirical null distributions.
//
// Power values share the unit convention of the wavelet package: spectra
// are normalized by the signal variance, so white noise has an expected
// power of one in every bin.
package spectrum

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/cwbudde/algo-wavelet/dsp/core"
	"github.com/cwbudde/algo-wavelet/dsp/window"
)

// Errors returned by the spectrum functions.
var (
	ErrEmptySignal   = errors.New("spectrum: empty signal")
	ErrInvalidDt     = errors.New("spectrum: sampling interval must be positive")
	ErrInvalidAlpha  = errors.New("spectrum: AR(1) coefficient must lie in [0, 1)")
	ErrInvalidSigma  = errors.New("spectrum: noise amplitude must be positive")
	ErrInvalidLength = errors.New("spectrum: sample count must be positive")
	ErrEmptyPeriods  = errors.New("spectrum: empty period grid")
)

// FourierOption configures FourierPower.
type FourierOption func(*fourierConfig)

type fourierConfig struct {
	taper window.Type
}

// WithTaper selects a taper window applied to the signal before the
// transform. The default is rectangular, i.e. no tapering.
func WithTaper(t window.Type) FourierOption {
	return func(c *fourierConfig) {
		c.taper = t
	}
}

// FourierPower computes the one-sided Fourier power spectrum of the
// signal, normalized to white-noise units.
//
// Power is scaled by the sum of squared taper coefficients and the
// signal variance, so a unit-variance white-noise input keeps an
// expected power of one for any taper. For the rectangular default
// this reduces to the orthonormal 1/sqrt(N) convention, directly
// comparable to wavelet modulus values. Frequencies run from 0 to the
// Nyquist frequency in steps of 1/(N*dt).
func FourierPower(sig []float64, dt float64, opts ...FourierOption) (freqs, power []float64, err error) {
	if len(sig) == 0 {
		return nil, nil, ErrEmptySignal
	}
	if dt <= 0 {
		return nil, nil, ErrInvalidDt
	}

	cfg := fourierConfig{taper: window.TypeRectangular}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	n := len(sig)

	taper := window.Generate(cfg.taper, n, window.WithPeriodic())
	tapered, err := window.ApplyCoefficients(sig, taper)
	if err != nil {
		return nil, nil, err
	}

	sumSq := 0.0
	for _, w := range taper {
		sumSq += w * w
	}

	coeffs := fourier.NewFFT(n).Coefficients(nil, tapered)

	norm := 1 / (sumSq * core.Variance(sig))

	freqs = make([]float64, len(coeffs))
	power = make([]float64, len(coeffs))
	df := 1 / (float64(n) * dt)

	for k, c := range coeffs {
		freqs[k] = float64(k) * df
		power[k] = (real(c)*real(c) + imag(c)*imag(c)) * norm
	}

	return freqs, power, nil
}

// AR1Spectrum evaluates the theoretical power spectrum of an AR(1)
// process with lag-one autocorrelation alpha on the given period grid.
//
// The spectrum is normalized to unit total variance, so alpha = 0
// recovers the flat white-noise spectrum of ones. Larger alpha tilts
// power toward long periods, the classical red-noise null model for
// significance testing.
func AR1Spectrum(alpha float64, periods []float64, dt float64) ([]float64, error) {
	if alpha < 0 || alpha >= 1 {
		return nil, ErrInvalidAlpha
	}
	if len(periods) == 0 {
		return nil, ErrEmptyPeriods
	}
	if dt <= 0 {
		return nil, ErrInvalidDt
	}

	out := make([]float64, len(periods))
	for i, p := range periods {
		out[i] = (1 - alpha*alpha) / (1 + alpha*alpha - 2*alpha*math.Cos(2*math.Pi*dt/p))
	}

	return out, nil
}
