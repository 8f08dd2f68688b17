// Package signal generates deterministic synthetic signals: sinusoids
// addressed by period, Gaussian white noise, polynomial trends and AR(1)
// noise, plus the composite oscillation-plus-trend-plus-noise signal used
// throughout the examples.
package signal

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/cwbudde/algo-wavelet/dsp/core"
	"github.com/cwbudde/algo-wavelet/spectrum"
)

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	cfg  core.AnalysisConfig
	seed uint64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSamplingInterval sets the sampling interval used to translate
// sample indices into time.
func WithSamplingInterval(dt float64) Option {
	return func(g *Generator) {
		core.WithSamplingInterval(dt)(&g.cfg)
	}
}

// WithSeed sets the deterministic random seed for noise generation.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator. The defaults are
// the shared analysis defaults (unit sampling interval) and seed 1.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{cfg: core.ApplyAnalysisOptions(), seed: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator's analysis configuration.
func (g *Generator) Config() core.AnalysisConfig {
	return g.cfg
}

// Dt returns the configured sampling interval.
func (g *Generator) Dt() float64 {
	return g.cfg.Dt
}

// TimeVector returns the sample times 0, dt, ..., (n-1)*dt.
func (g *Generator) TimeVector(n int) []float64 {
	return core.TimeVector(n, g.cfg.Dt)
}

func (g *Generator) rng() *rand.Rand {
	return rand.New(rand.NewPCG(g.seed, g.seed))
}

// SineByPeriod generates a sinusoid with the given period in time units.
func (g *Generator) SineByPeriod(period, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("sine samples must be > 0: %d", samples)
	}
	if period <= 0 {
		return nil, fmt.Errorf("sine period must be > 0: %f", period)
	}

	out := make([]float64, samples)
	step := 2 * math.Pi * g.cfg.Dt / period
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// WhiteNoise generates deterministic Gaussian noise with the given
// standard deviation.
func (g *Generator) WhiteNoise(sigma float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if sigma < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", sigma)
	}

	out := make([]float64, samples)
	rng := g.rng()
	for i := range out {
		out[i] = sigma * rng.NormFloat64()
	}
	return out, nil
}

// AR1Noise generates deterministic AR(1) noise with lag-one
// autocorrelation alpha and innovation amplitude sigma.
func (g *Generator) AR1Noise(alpha, sigma float64, samples int) ([]float64, error) {
	return spectrum.AR1Sim(rand.NewPCG(g.seed, g.seed), alpha, samples, sigma)
}

// QuadraticTrend generates a monotone trend rising from 0 to amplitude
// over the record, quadratic in time.
func (g *Generator) QuadraticTrend(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("trend samples must be > 0: %d", samples)
	}

	out := make([]float64, samples)
	if samples == 1 {
		return out, nil
	}

	tEnd := g.cfg.Dt * float64(samples-1)
	for i := range out {
		t := g.cfg.Dt * float64(i)
		out[i] = amplitude * t * t / (tEnd * tEnd)
	}
	return out, nil
}

// Composite generates the classic synthetic test signal: a sinusoid of
// the given period and amplitude plus Gaussian noise plus a quadratic
// trend rising to trendAmplitude.
func (g *Generator) Composite(period, amplitude, noiseSigma, trendAmplitude float64, samples int) ([]float64, error) {
	out, err := g.SineByPeriod(period, amplitude, samples)
	if err != nil {
		return nil, err
	}

	noise, err := g.WhiteNoise(noiseSigma, samples)
	if err != nil {
		return nil, err
	}

	trend, err := g.QuadraticTrend(trendAmplitude, samples)
	if err != nil {
		return nil, err
	}

	for i := range out {
		out[i] += noise[i] + trend[i]
	}
	return out, nil
}
