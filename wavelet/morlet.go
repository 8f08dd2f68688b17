package wavelet

import (
	"math"
	"math/cmplx"
)

// DefaultOmega0 is the central frequency of the mother wavelet.
const DefaultOmega0 = 2 * math.Pi

// DefaultPeakFraction controls adaptive support clipping: the convolution
// kernel is truncated where the Gaussian envelope has decayed to
// 1/DefaultPeakFraction of its peak.
const DefaultPeakFraction = 1e6

// ScaleFromPeriod converts an oscillation period to the corresponding
// Morlet scale, using the strictly admissible Torrence-Compo relation.
// sfreq is the sampling frequency 1/dt.
func ScaleFromPeriod(period, sfreq, omega0 float64) float64 {
	return (omega0 + math.Sqrt(2+omega0*omega0)) * period * sfreq / (4 * math.Pi)
}

// ScalesFromPeriods converts a period grid to Morlet scales.
func ScalesFromPeriods(periods []float64, sfreq, omega0 float64) []float64 {
	out := make([]float64, len(periods))
	for i, p := range periods {
		out[i] = ScaleFromPeriod(p, sfreq, omega0)
	}

	return out
}

// PeriodFromScale inverts ScaleFromPeriod.
func PeriodFromScale(scale, sfreq, omega0 float64) float64 {
	return 4 * math.Pi * scale / ((omega0 + math.Sqrt(2+omega0*omega0)) * sfreq)
}

// ScaleFromPeriodNA converts a period to a scale for the non-admissible
// Morlet definition. Retained for compatibility with older analyses; the
// Analyzer always uses the admissible relation.
func ScaleFromPeriodNA(period, sfreq, omega0 float64) float64 {
	return omega0 * period * sfreq / (2 * math.Pi)
}

// Envelope evaluates the Gaussian envelope of the Morlet wavelet at time
// offset t and the given scale. The scale^-1/2 prefactor gives unit energy
// across scales.
func Envelope(t, scale float64) float64 {
	x := t / scale
	return math.Pow(math.Pi, -0.25) / math.Sqrt(scale) * math.Exp(-0.5*x*x)
}

// Morlet evaluates the complex Morlet wavelet at time offset t and the
// given scale.
func Morlet(t, scale, omega0 float64) complex128 {
	carrier := cmplx.Exp(complex(0, omega0*t/scale))
	return complex(Envelope(t, scale), 0) * carrier
}

// SupportRadius returns the time offset (in samples) at which the Morlet
// envelope has decayed to 1/peakFraction of its peak value. Convolution
// kernels clipped at this radius keep the per-scale cost proportional to
// the scale instead of the signal length.
func SupportRadius(scale, peakFraction float64) int {
	// Inverting the Gaussian branch: the peak value cancels, leaving
	// scale * sqrt(2*ln(peakFraction)).
	return int(scale * math.Sqrt(2*math.Log(peakFraction)))
}

// COISlope returns the slope of the cone of influence in the period view:
// the boundary period at time distance t from a spectrum edge is slope*t.
// Derived from the Morlet e-folding time.
func COISlope(omega0 float64) float64 {
	return 4 * math.Pi / (math.Sqrt2 * (omega0 + math.Sqrt(2+omega0*omega0)))
}
