package core

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

const defaultEpsilon = 1e-12

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// Mean returns the arithmetic mean of data. Returns 0 for empty input.
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}

	return stat.Mean(data, nil)
}

// Variance returns the population variance (second central moment) of data.
// Returns 0 for empty input.
//
// The population convention matters: the wavelet and Fourier spectra are
// normalized so a unit-variance white-noise signal has expected power one,
// and that calibration assumes division by n, not n-1.
func Variance(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}

	return stat.MomentAbout(2, data, stat.Mean(data, nil), nil)
}

// StdDev returns the population standard deviation of data.
func StdDev(data []float64) float64 {
	return math.Sqrt(Variance(data))
}

// Demean returns a copy of data with its mean subtracted.
func Demean(data []float64) []float64 {
	out := make([]float64, len(data))
	m := Mean(data)
	for i, v := range data {
		out[i] = v - m
	}

	return out
}

// Zero clears buf in place, for destination buffers that accumulate.
func Zero(buf []float64) {
	for i := range buf {
		buf[i] = 0
	}
}

// TimeVector returns n uniformly spaced time points 0, dt, 2*dt, ...
func TimeVector(n int, dt float64) []float64 {
	if n <= 0 {
		return nil
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i) * dt
	}

	return out
}
