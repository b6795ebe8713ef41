package noise

import "math/rand"

// Source draws uniformly distributed values in [-1, 1].
type Source interface {
	Next() float32
}

// uniformSteps is the number of quantization steps across [-1, 1]; it
// matches the float32 mantissa so every step is exactly representable.
const uniformSteps = 1 << 24

// UniformSource is a seedable [Source] inclusive on both ends of [-1, 1].
type UniformSource struct {
	rng *rand.Rand
}

// NewUniformSource returns a deterministic source for seed.
func NewUniformSource(seed int64) *UniformSource {
	return &UniformSource{rng: rand.New(rand.NewSource(seed))}
}

// NewEntropySource returns a source seeded from the global generator, so
// consecutive runs differ.
func NewEntropySource() *UniformSource {
	return NewUniformSource(rand.Int63())
}

// Next returns the next uniform value in [-1, 1].
func (s *UniformSource) Next() float32 {
	k := s.rng.Int63n(uniformSteps + 1)
	return float32(k)/(uniformSteps/2) - 1
}
