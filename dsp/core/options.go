package core

// AnalysisConfig defines common settings for time-series analysis.
//
// Dt is the sampling interval in the caller's time units. All periods,
// cutoffs and time vectors handed to the analysis packages are expected in
// the same units.
type AnalysisConfig struct {
	Dt float64
}

// AnalysisOption mutates an AnalysisConfig.
type AnalysisOption func(*AnalysisConfig)

// DefaultAnalysisConfig returns sensible defaults for offline analysis.
func DefaultAnalysisConfig() AnalysisConfig {
	return AnalysisConfig{
		Dt: 1,
	}
}

// WithSamplingInterval sets the sampling interval dt.
func WithSamplingInterval(dt float64) AnalysisOption {
	return func(cfg *AnalysisConfig) {
		if dt > 0 {
			cfg.Dt = dt
		}
	}
}

// ApplyAnalysisOptions applies zero or more options to the default config.
func ApplyAnalysisOptions(opts ...AnalysisOption) AnalysisConfig {
	cfg := DefaultAnalysisConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
