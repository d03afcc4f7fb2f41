package dspkit

// Config holds the tunable knobs of the bandpass stage. It follows the
// functional-option shape of dsp/core.ProcessorConfig in the teacher
// library: a zero Config is never used directly, callers go through
// DefaultConfig and Option values.
type Config struct {
	HighpassCutoff float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the spec-mandated defaults (0.8 Hz highpass
// cutoff).
func DefaultConfig() Config {
	return Config{HighpassCutoff: DefaultHighpassCutoff}
}

// WithHighpassCutoff overrides the highpass cutoff frequency in Hz.
// Non-positive values are ignored.
func WithHighpassCutoff(cutoff float64) Option {
	return func(cfg *Config) {
		if cutoff > 0 {
			cfg.HighpassCutoff = cutoff
		}
	}
}

func applyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
