package noise

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-noise/dsp/core"
)

// DefaultGrayFrequency is the gray-noise envelope frequency used when none
// is given.
const DefaultGrayFrequency = 1000.0

// Generator renders noise buffers from a shared configuration. Filter state
// is kept per noise type and survives across Generate calls, so rendering
// one type never disturbs the statistics of another.
type Generator struct {
	cfg    core.ProcessorConfig
	source Source

	white whiteFilter
	pink  pinkFilter
	brown brownFilter
	blue  blueFilter
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed makes the generator deterministic by drawing from a
// [UniformSource] seeded with seed.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.source = NewUniformSource(seed)
	}
}

// WithSource sets the random source. The generator takes ownership of src.
func WithSource(src Source) Option {
	return func(g *Generator) {
		if src != nil {
			g.source = src
		}
	}
}

// NewGenerator creates a generator drawing from an entropy-seeded source.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return NewGeneratorWithOptions(opts)
}

// NewGeneratorWithOptions creates a configured generator with noise-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := &Generator{
		cfg: core.ApplyProcessorOptions(coreOpts...),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	if g.source == nil {
		g.source = NewEntropySource()
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// MaxSamples is the largest buffer Generate renders in one call.
const MaxSamples = math.MaxInt32

// SampleCount returns round(sampleRate*duration). Non-positive or NaN
// durations and non-positive rates give 0. Counts above [MaxSamples],
// including an infinite duration, fail with [ErrTooLong].
func SampleCount(sampleRate int, duration float64) (int, error) {
	if !(duration > 0) || sampleRate <= 0 {
		return 0, nil
	}
	n := math.Round(float64(sampleRate) * duration)
	if n > MaxSamples {
		return 0, fmt.Errorf("%w: %g s at %d Hz", ErrTooLong, duration, sampleRate)
	}
	return int(n), nil
}

// Generate renders duration seconds of noise of type t.
//
// frequency sets the gray-noise envelope in Hz; values <= 0 select
// [DefaultGrayFrequency]. It is ignored for other types. A non-positive
// duration yields an empty, non-nil buffer; one needing more than
// [MaxSamples] samples fails with [ErrTooLong].
func (g *Generator) Generate(t Type, duration, frequency float64) ([]float32, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, int(t))
	}

	n, err := SampleCount(g.cfg.SampleRate, duration)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return []float32{}, nil
	}

	if t == Gray {
		return g.gray(n, frequency), nil
	}

	f := g.filter(t)
	out := make([]float32, n)
	for i := range out {
		out[i] = f.process(g.source.Next())
	}
	return out, nil
}

// Reset clears all filter state. The random source is left untouched.
func (g *Generator) Reset() {
	for _, t := range Types() {
		if f := g.filter(t); f != nil {
			f.reset()
		}
	}
}

func (g *Generator) filter(t Type) filter {
	switch t {
	case White:
		return g.white
	case Pink:
		return &g.pink
	case Brown:
		return &g.brown
	case Blue:
		return &g.blue
	default:
		return nil
	}
}

// gray renders one-second blocks until n samples exist. The last block stops
// at n, so exactly n draws are taken from the source.
func (g *Generator) gray(n int, frequency float64) []float32 {
	if !(frequency > 0) {
		frequency = DefaultGrayFrequency
	}

	out := make([]float32, 0, n)
	for len(out) < n {
		out = g.appendGrayBlock(out, min(g.cfg.SampleRate, n-len(out)), frequency)
	}
	return out
}

// appendGrayBlock appends the first count samples of a one-second block.
func (g *Generator) appendGrayBlock(dst []float32, count int, frequency float64) []float32 {
	for i := 0; i < count; i++ {
		env := grayEnvelope(i, g.cfg.SampleRate, frequency)
		dst = append(dst, g.source.Next()*env*grayGain)
	}
	return dst
}
