package ridge

import (
	"math"
	"math/rand/v2"
)

// Default annealing parameters.
const (
	DefaultInitialTemp  = 1.0
	DefaultMaxJump      = 2
	DefaultCurvePenalty = 0.0
	DefaultSlopePenalty = 0.0
)

// tempScale rescales the user-facing temperature and penalty knobs into
// the internal cost units; without it useful values would sit in an
// awkward 1e-2 range.
const tempScale = 0.01

// Annealer searches for a low-cost ridge by simulated annealing with
// logarithmic cooling.
type Annealer struct {
	cfg annealConfig
}

// AnnealOption configures an Annealer.
type AnnealOption func(*annealConfig)

type annealConfig struct {
	initialTemp  float64
	maxJump      int
	slopePenalty float64
	curvePenalty float64
}

func defaultAnnealConfig() annealConfig {
	return annealConfig{
		initialTemp:  DefaultInitialTemp,
		maxJump:      DefaultMaxJump,
		slopePenalty: DefaultSlopePenalty,
		curvePenalty: DefaultCurvePenalty,
	}
}

// WithInitialTemp sets the starting temperature of the cooling schedule.
func WithInitialTemp(temp float64) AnnealOption {
	return func(c *annealConfig) {
		if temp > 0 {
			c.initialTemp = temp
		}
	}
}

// WithMaxJump bounds the per-step row displacement.
func WithMaxJump(jump int) AnnealOption {
	return func(c *annealConfig) {
		if jump > 0 {
			c.maxJump = jump
		}
	}
}

// WithCurvePenalty weights the second-difference term of the cost,
// punishing curvature of the ridge.
func WithCurvePenalty(penalty float64) AnnealOption {
	return func(c *annealConfig) {
		if penalty >= 0 {
			c.curvePenalty = penalty
		}
	}
}

// WithSlopePenalty weights the first-difference term of the cost,
// punishing steep ridges.
func WithSlopePenalty(penalty float64) AnnealOption {
	return func(c *annealConfig) {
		if penalty >= 0 {
			c.slopePenalty = penalty
		}
	}
}

// NewAnnealer creates an Annealer.
func NewAnnealer(opts ...AnnealOption) *Annealer {
	cfg := defaultAnnealConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return &Annealer{cfg: cfg}
}

// AnnealCost is the objective minimized by the annealer: negative summed
// power along the ridge plus slope and curvature penalties, averaged over
// the ridge length. Lower is better; a ridge hugging high power with few
// jumps scores lowest.
func AnnealCost(ys []int, modulus [][]float64, slopePenalty, curvePenalty float64) float64 {
	n := len(ys)

	var power float64
	for t, row := range ys {
		power += modulus[row][t]
	}

	var slope float64
	for t := 1; t < n; t++ {
		slope += math.Abs(float64(ys[t] - ys[t-1]))
	}

	var curve float64
	for t := 2; t < n; t++ {
		curve += math.Abs(float64(ys[t] - 2*ys[t-1] + ys[t-2]))
	}

	return (-power + slopePenalty*slope + curvePenalty*curve) / float64(n)
}

// Trace runs the annealing search starting from the flat ridge at row y0.
//
// Each step perturbs a single random time point by at most the configured
// jump, accepting uphill moves with the Metropolis probability under a
// T(k) = T0/ln(2+k) cooling schedule. The returned cost is the cost of
// the returned ridge.
func (a *Annealer) Trace(rng *rand.Rand, modulus [][]float64, y0, steps int) ([]int, float64, error) {
	if len(modulus) == 0 || len(modulus[0]) == 0 {
		return nil, 0, ErrEmptySpectrum
	}
	if y0 < 0 || y0 >= len(modulus) {
		return nil, 0, ErrStartOutside
	}
	if steps < 0 {
		return nil, 0, ErrNegativeSteps
	}

	rows := len(modulus)
	cols := len(modulus[0])
	maxJump := a.cfg.maxJump

	// The boundary reflection assumes the forced-inward zones at the two
	// edges do not overlap; with fewer rows a step could leave the grid.
	if rows <= maxJump+1 {
		return nil, 0, ErrSpectrumTooSmall
	}

	temp := a.cfg.initialTemp * tempScale
	slopePen := a.cfg.slopePenalty * tempScale
	curvePen := a.cfg.curvePenalty * tempScale

	ys := make([]int, cols)
	for i := range ys {
		ys[i] = y0
	}

	cost := AnnealCost(ys, modulus, slopePen, curvePen)

	for k := 0; k < steps; k++ {
		tk := temp / math.Log(2+float64(k))

		pos := rng.IntN(cols)

		// Reflect off the spectrum edges, otherwise jump a random
		// non-zero amount within the allowed range.
		var eps int
		switch {
		case ys[pos] >= rows-maxJump-1:
			eps = -1
		case ys[pos] < maxJump:
			eps = 1
		default:
			eps = rng.IntN(2*maxJump) - maxJump
			if eps >= 0 {
				eps++
			}
		}

		ys[pos] += eps
		candidate := AnnealCost(ys, modulus, slopePen, curvePen)

		accept := true
		if delta := candidate - cost; delta > 0 {
			if rng.Float64() > math.Exp(-delta/tk) {
				accept = false
			}
		}

		if accept {
			cost = candidate
		} else {
			ys[pos] -= eps
		}
	}

	return ys, cost, nil
}
