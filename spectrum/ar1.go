package spectrum

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// AR1Sim simulates n samples of the AR(1) process
//
//	x[i] = alpha*x[i-1] + sigma*eps[i]
//
// with standard-normal innovations eps drawn from src. The initial value
// is itself a standard-normal draw; use AR1SimFrom for an explicit start.
// A nil src falls back to the shared global source.
func AR1Sim(src rand.Source, alpha float64, n int, sigma float64) ([]float64, error) {
	normal, err := innovations(src, alpha, n, sigma)
	if err != nil {
		return nil, err
	}

	return simulate(normal, alpha, n, sigma, normal.Rand()), nil
}

// AR1SimFrom simulates n samples of the AR(1) process starting from x0.
func AR1SimFrom(src rand.Source, alpha float64, n int, sigma, x0 float64) ([]float64, error) {
	normal, err := innovations(src, alpha, n, sigma)
	if err != nil {
		return nil, err
	}

	return simulate(normal, alpha, n, sigma, x0), nil
}

func innovations(src rand.Source, alpha float64, n int, sigma float64) (distuv.Normal, error) {
	if alpha < 0 || alpha >= 1 {
		return distuv.Normal{}, ErrInvalidAlpha
	}
	if n <= 0 {
		return distuv.Normal{}, ErrInvalidLength
	}
	if sigma <= 0 {
		return distuv.Normal{}, ErrInvalidSigma
	}

	return distuv.Normal{Mu: 0, Sigma: 1, Src: src}, nil
}

func simulate(normal distuv.Normal, alpha float64, n int, sigma, x0 float64) []float64 {
	out := make([]float64, n)
	out[0] = x0

	for i := 1; i < n; i++ {
		out[i] = alpha*out[i-1] + sigma*normal.Rand()
	}

	return out
}
