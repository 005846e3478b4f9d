package gfx

// DefaultTargetFPS is the frame rate requested from a backend when
// Open is called without WithTargetFPS.
const DefaultTargetFPS = 60

// Option adjusts the Config built by Open before it reaches the
// backend. Use functional options to override the defaults.
//
// Example:
//
//	// Default 60 FPS pacing
//	win, err := gfx.Open(b, 800, 450, "Infinite Runner")
//
//	// Uncapped rendering for benchmark runs
//	win, err := gfx.Open(b, 800, 450, "bench", gfx.WithTargetFPS(0))
type Option func(*Config)

// WithTargetFPS sets the frame rate requested from the backend.
// fps <= 0 requests uncapped rendering. Backends without their own
// frame pacing ignore the value either way; see Config.TargetFPS.
func WithTargetFPS(fps int) Option {
	return func(cfg *Config) {
		cfg.TargetFPS = fps
	}
}
