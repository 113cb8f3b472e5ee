package activation

import "github.com/cwbudde/algo-bvd/internal/minimize"

// defaultSettleFraction is the 4τ point: the envelope within 98.2% of
// the steady-state amplitude.
const defaultSettleFraction = 0.982

// config holds per-call analysis settings.
type config struct {
	settleFraction float64
	scanPoints     int
}

func defaultConfig() config {
	return config{
		settleFraction: defaultSettleFraction,
		scanPoints:     minimize.DefaultScanPoints,
	}
}

// Option mutates an analysis config.
type Option func(*config)

// WithSettleFraction sets the settling threshold as a fraction of the
// steady-state amplitude, in (0, 1). Out-of-range values are ignored.
func WithSettleFraction(f float64) Option {
	return func(cfg *config) {
		if f > 0 && f < 1 {
			cfg.settleFraction = f
		}
	}
}

// WithScanPoints sets the coarse grid size of the boost search.
func WithScanPoints(n int) Option {
	return func(cfg *config) {
		if n >= 3 {
			cfg.scanPoints = n
		}
	}
}

func applyOptions(opts ...Option) config {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
