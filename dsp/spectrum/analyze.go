package spectrum

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-noise/dsp/core"
)

// DefaultBinCount is the number of display bins produced by [Analyze].
const DefaultBinCount = 60

var (
	// ErrInvalidSampleRate is returned for non-positive sample rates.
	ErrInvalidSampleRate = errors.New("spectrum: sample rate must be > 0")
	// ErrInvalidBinCount is returned for non-positive bin counts.
	ErrInvalidBinCount = errors.New("spectrum: bin count must be > 0")
)

// Profile is a binned magnitude spectrum from 0 Hz to NyquistHz.
type Profile struct {
	// Bins holds the summed normalized magnitudes, lowest frequency first.
	Bins []float64
	// NyquistHz is sampleRate/2 (integer division), the label of the top edge.
	NyquistHz int
}

// Max returns the largest bin value, or 0 for an empty profile.
func (p Profile) Max() float64 {
	if len(p.Bins) == 0 {
		return 0
	}
	return floats.Max(p.Bins)
}

// Analyze computes a [DefaultBinCount]-bin linear profile of samples.
func Analyze(samples []float32, sampleRate int) (Profile, error) {
	return AnalyzeBins(samples, sampleRate, DefaultBinCount)
}

// AnalyzeBins computes a linear profile of samples with at most count bins.
// See [LinearBins] for how magnitudes map onto bins.
func AnalyzeBins(samples []float32, sampleRate, count int) (Profile, error) {
	if sampleRate <= 0 {
		return Profile{}, fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}
	if count <= 0 {
		return Profile{}, fmt.Errorf("%w: %d", ErrInvalidBinCount, count)
	}

	mags, err := Magnitudes(samples)
	if err != nil {
		return Profile{}, err
	}

	cfg := core.ApplyProcessorOptions(core.WithSampleRate(sampleRate))
	return Profile{
		Bins:      LinearBins(mags, count),
		NyquistHz: cfg.Nyquist(),
	}, nil
}

// Magnitudes returns |X[k]|/N for k = 0..N/2, where X is the DFT of samples
// and N = len(samples). An empty input yields nil.
func Magnitudes(samples []float32) ([]float64, error) {
	half, err := halfSpectrum(samples)
	if err != nil {
		return nil, err
	}
	if len(half) == 0 {
		return nil, nil
	}
	return ScaledMagnitude(half, 1/float64(len(samples))), nil
}

// LinearBins sums mags into count contiguous equal-width bins.
//
// The chunk width is len(mags)/count (integer division). The trailing
// len(mags)%count magnitudes are dropped, which keeps every bin the same
// width. When there are fewer magnitudes than bins each magnitude becomes
// its own bin, so the result is shorter than count. Empty input yields an
// empty, non-nil slice.
func LinearBins(mags []float64, count int) []float64 {
	if count <= 0 || len(mags) == 0 {
		return []float64{}
	}

	if len(mags) < count {
		out := make([]float64, len(mags))
		copy(out, mags)
		return out
	}

	width := len(mags) / count
	out := make([]float64, count)
	for i := range out {
		out[i] = floats.Sum(mags[i*width : (i+1)*width])
	}
	return out
}
