package core

// ProcessorConfig defines common processing settings shared by generators
// and analyzers.
type ProcessorConfig struct {
	// SampleRate in Hz.
	SampleRate int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultSampleRate is the CD-quality rate used when no rate is configured.
const DefaultSampleRate = 44100

// DefaultProcessorConfig returns sensible defaults for offline rendering.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: DefaultSampleRate,
	}
}

// WithSampleRate sets the processing sample rate. Non-positive rates are ignored.
func WithSampleRate(sampleRate int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Nyquist returns the integer Nyquist frequency label for the configured rate.
func (c ProcessorConfig) Nyquist() int {
	return c.SampleRate / 2
}
