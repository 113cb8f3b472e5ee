package deactivation

import "github.com/cwbudde/algo-bvd/internal/minimize"

// config holds per-call analysis settings.
type config struct {
	slope        float64
	hasSlope     bool
	curvature    float64
	hasCurvature bool
	scanPoints   int
}

func defaultConfig() config {
	return config{scanPoints: minimize.DefaultScanPoints}
}

// Option mutates an analysis config.
type Option func(*config)

// WithInitialSlope overrides the initial current slope i'(0) used by
// Current. The default is zero (switch-off at a current peak).
func WithInitialSlope(di0 float64) Option {
	return func(cfg *config) {
		cfg.slope = di0
		cfg.hasSlope = true
	}
}

// WithInitialCurvature overrides the initial curvature i''(0) used by
// Current. The default is -ω_d²·i0.
func WithInitialCurvature(d2i0 float64) Option {
	return func(cfg *config) {
		cfg.curvature = d2i0
		cfg.hasCurvature = true
	}
}

// WithScanPoints sets the coarse grid size of the resistance search.
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
