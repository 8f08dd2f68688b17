package testutil

import (
	"math"
	"math/rand/v2"
)

// SineByPeriod generates a deterministic sinusoid with the given period
// in time units of dt per sample.
func SineByPeriod(period, dt, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * dt / period
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// Chirp generates a sinusoid whose period sweeps linearly from p0 to p1
// over the record.
func Chirp(p0, p1, dt float64, length int) []float64 {
	out := make([]float64, length)
	phase := 0.0
	for i := range out {
		out[i] = math.Sin(phase)
		frac := float64(i) / float64(length-1)
		period := p0 + (p1-p0)*frac
		phase += 2 * math.Pi * dt / period
	}
	return out
}

// GaussianNoise generates standard-normal noise scaled by sigma with a
// fixed seed for reproducibility.
func GaussianNoise(seed uint64, sigma float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewPCG(seed, seed))
	for i := range out {
		out[i] = sigma * rng.NormFloat64()
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// Constant generates a constant-valued signal.
func Constant(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}
