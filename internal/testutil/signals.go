package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic float32 sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float32 {
	out := make([]float32, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = float32(amplitude * math.Sin(step*float64(i)))
	}
	return out
}

// DeterministicNoise generates uniform values in [-amplitude, amplitude) with
// a fixed seed.
func DeterministicNoise(seed int64, amplitude float64, length int) []float32 {
	out := make([]float32, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = float32((rng.Float64()*2 - 1) * amplitude)
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float32, length int) []float32 {
	out := make([]float32, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// SequenceSource replays a fixed list of draws, wrapping at the end. It
// satisfies the noise package's Source interface.
type SequenceSource struct {
	values []float32
	pos    int
}

// NewSequenceSource returns a source replaying values in order.
func NewSequenceSource(values ...float32) *SequenceSource {
	return &SequenceSource{values: values}
}

// Next returns the next recorded value, or 0 when no values were given.
func (s *SequenceSource) Next() float32 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.pos]
	s.pos = (s.pos + 1) % len(s.values)
	return v
}

// Drawn reports how many values were consumed, modulo the sequence length.
func (s *SequenceSource) Drawn() int {
	return s.pos
}
