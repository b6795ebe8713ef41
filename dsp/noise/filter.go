package noise

import (
	"math"

	"github.com/cwbudde/algo-noise/dsp/core"
)

// filter shapes one white sample into one colored sample. Implementations
// keep private state that persists across calls until reset.
type filter interface {
	process(white float32) float32
	reset()
}

type whiteFilter struct{}

func (whiteFilter) process(white float32) float32 { return white }
func (whiteFilter) reset()                        {}

// pinkFilter sums six one-pole low-pass stages and a white tap delayed by one
// sample.
type pinkFilter struct {
	state [7]float32
}

const (
	pinkDirectGain = 0.5362
	pinkDelayGain  = 0.115926
	pinkOutputGain = 0.11
)

func (f *pinkFilter) process(white float32) float32 {
	s := &f.state
	s[0] = 0.99886*s[0] + white*0.0555179
	s[1] = 0.99332*s[1] + white*0.0750759
	s[2] = 0.96900*s[2] + white*0.1538520
	s[3] = 0.86650*s[3] + white*0.3104856
	s[4] = 0.55000*s[4] + white*0.5329522
	s[5] = -0.7616*s[5] - white*0.0168980

	out := s[0] + s[1] + s[2] + s[3] + s[4] + s[5] + s[6] + white*pinkDirectGain

	// s[6] is consumed on the next sample.
	s[6] = white * pinkDelayGain

	return out * pinkOutputGain
}

func (f *pinkFilter) reset() { f.state = [7]float32{} }

// brownFilter integrates white noise with a small step, clamped to [-1, 1]
// before the output gain.
type brownFilter struct {
	level float32
}

const (
	brownStep = 0.02
	brownGain = 3.5
)

func (f *brownFilter) process(white float32) float32 {
	f.level = core.ClampFloat32(f.level+brownStep*white, -1, 1)
	return f.level * brownGain
}

func (f *brownFilter) reset() { f.level = 0 }

// blueFilter differentiates white noise.
type blueFilter struct {
	prev float32
}

const blueGain = 0.5

func (f *blueFilter) process(white float32) float32 {
	out := (white - f.prev) * blueGain
	f.prev = white
	return out
}

func (f *blueFilter) reset() { f.prev = 0 }

const grayGain = 0.3

// grayEnvelope returns |sin(2*pi*freq*t)| for sample i of a one-second block.
func grayEnvelope(i, sampleRate int, freq float64) float32 {
	t := float64(i) / float64(sampleRate)
	return float32(math.Abs(math.Sin(2 * math.Pi * freq * t)))
}
