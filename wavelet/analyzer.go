package wavelet

import (
	"errors"
	"log"
	"runtime"

	"github.com/cwbudde/algo-vecmath"
	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-wavelet/dsp/conv"
	"github.com/cwbudde/algo-wavelet/dsp/core"
)

// Errors returned by the analyzer.
var (
	ErrEmptySignal  = errors.New("wavelet: empty signal")
	ErrEmptyPeriods = errors.New("wavelet: empty period grid")
	ErrInvalidDt    = errors.New("wavelet: sampling interval must be positive")
)

// Spectrum holds the result of a continuous wavelet transform.
//
// Transform is the complex wavelet transform with one row per period and
// one column per time point. Modulus is |Transform|^2 normalized by the
// signal variance, so a white-noise signal has expected modulus one.
// Both are freshly allocated per call and never mutated afterwards.
type Spectrum struct {
	Modulus   [][]float64
	Transform [][]complex128
	Periods   []float64
	Dt        float64
}

// NumPeriods returns the number of period rows.
func (s *Spectrum) NumPeriods() int {
	return len(s.Modulus)
}

// NumTimes returns the number of time columns.
func (s *Spectrum) NumTimes() int {
	if len(s.Modulus) == 0 {
		return 0
	}
	return len(s.Modulus[0])
}

// Analyzer computes Morlet wavelet spectra with a fixed configuration.
type Analyzer struct {
	cfg config
}

// Option configures an Analyzer.
type Option func(*config)

type config struct {
	omega0       float64
	peakFraction float64
	clipSupport  bool
	parallelism  int
	logger       *log.Logger
}

func defaultConfig() config {
	return config{
		omega0:       DefaultOmega0,
		peakFraction: DefaultPeakFraction,
		clipSupport:  true,
		parallelism:  runtime.GOMAXPROCS(0),
		logger:       log.Default(),
	}
}

// WithOmega0 sets the central frequency of the mother wavelet.
func WithOmega0(omega0 float64) Option {
	return func(c *config) {
		if omega0 > 0 {
			c.omega0 = omega0
		}
	}
}

// WithPeakFraction sets the envelope decay at which convolution kernels
// are clipped.
func WithPeakFraction(fraction float64) Option {
	return func(c *config) {
		if fraction > 1 {
			c.peakFraction = fraction
		}
	}
}

// WithFullSupport disables adaptive kernel clipping; every scale then
// convolves with a kernel spanning the whole signal. Mostly useful for
// validating the clipped fast path.
func WithFullSupport() Option {
	return func(c *config) {
		c.clipSupport = false
	}
}

// WithParallelism bounds the number of per-scale convolutions running
// concurrently. Values below 1 force sequential computation.
func WithParallelism(n int) Option {
	return func(c *config) {
		if n < 1 {
			n = 1
		}
		c.parallelism = n
	}
}

// WithLogger sets the destination for soft warnings (sub-Nyquist period
// grids, periods exceeding the record length).
func WithLogger(logger *log.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates an Analyzer.
func New(opts ...Option) *Analyzer {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return &Analyzer{cfg: cfg}
}

// Omega0 returns the configured central wavelet frequency.
func (a *Analyzer) Omega0() float64 {
	return a.cfg.omega0
}

// ComputeSpectrum computes the Morlet wavelet spectrum of the signal for
// the given ascending period grid. dt is the sampling interval in the
// same time units as the periods.
//
// The signal mean is subtracted on an internal copy; the caller's slice
// is never modified. A period grid reaching below the Nyquist limit 2*dt
// or beyond the observable record length dt*len(sig) triggers a warning
// on the configured logger, and computation proceeds.
func (a *Analyzer) ComputeSpectrum(sig []float64, dt float64, periods []float64) (*Spectrum, error) {
	if len(sig) == 0 {
		return nil, ErrEmptySignal
	}
	if dt <= 0 {
		return nil, ErrInvalidDt
	}
	if len(periods) == 0 {
		return nil, ErrEmptyPeriods
	}

	if periods[0] < 2*dt {
		a.cfg.logger.Printf("wavelet: period grid reaches below the Nyquist limit %.2f", 2*dt)
	}
	if maxPeriod := periods[len(periods)-1]; maxPeriod > dt*float64(len(sig)) {
		a.cfg.logger.Printf("wavelet: max period %.1f exceeds the observable record length %.1f, proceeding",
			maxPeriod, dt*float64(len(sig)))
	}

	demeaned := core.Demean(sig)
	scales := ScalesFromPeriods(periods, 1/dt, a.cfg.omega0)

	transform := make([][]complex128, len(scales))

	var g errgroup.Group
	g.SetLimit(a.cfg.parallelism)

	for ind, scale := range scales {
		g.Go(func() error {
			kernel := a.kernel(scale, len(demeaned))

			row, err := conv.DirectComplexMode(demeaned, kernel, conv.ModeSame)
			if err != nil {
				return err
			}

			transform[ind] = row
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Spectrum{
		Modulus:   a.modulus(transform, core.Variance(demeaned)),
		Transform: transform,
		Periods:   append([]float64(nil), periods...),
		Dt:        dt,
	}, nil
}

// kernel evaluates the Morlet wavelet over its (possibly clipped) support
// for one scale. The kernel never exceeds the signal length.
func (a *Analyzer) kernel(scale float64, signalLen int) []complex128 {
	radius := signalLen
	if a.cfg.clipSupport {
		radius = SupportRadius(scale, a.cfg.peakFraction)
		if radius < 1 {
			radius = 1
		}
	}

	var offsets []float64
	if 2*radius > signalLen {
		// Full support: sample points centered on the signal.
		offsets = make([]float64, signalLen)
		start := -float64(signalLen) / 2
		for i := range offsets {
			offsets[i] = start + float64(i)
		}
	} else {
		offsets = make([]float64, 2*radius)
		for i := range offsets {
			offsets[i] = float64(i - radius)
		}
	}

	kernel := make([]complex128, len(offsets))
	for i, t := range offsets {
		kernel[i] = Morlet(t, scale, a.cfg.omega0)
	}

	return kernel
}

// modulus converts the complex transform into variance-normalized wavelet
// power, row by row.
func (a *Analyzer) modulus(transform [][]complex128, variance float64) [][]float64 {
	modulus := make([][]float64, len(transform))
	inv := 1 / variance

	for i, row := range transform {
		re := make([]float64, len(row))
		im := make([]float64, len(row))
		for j, z := range row {
			re[j] = real(z)
			im[j] = imag(z)
		}

		power := make([]float64, len(row))
		vecmath.Power(power, re, im)
		for j := range power {
			power[j] *= inv
		}

		modulus[i] = power
	}

	return modulus
}
