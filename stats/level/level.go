// Package level summarizes the amplitude of a rendered sample buffer.
package level

import "math"

// Summary holds amplitude statistics of a float32 sample buffer.
//
//nolint:revive
type Summary struct {
	Length         int
	DC             float64 // mean
	RMS            float64
	RMS_dB         float64
	Peak           float64 // max |x|
	Peak_dB        float64
	CrestFactor_dB float64
	ZeroCrossings  int
	// Clipped counts samples outside [-1, 1], which a 16-bit PCM writer
	// will clamp.
	Clipped int
}

// ampTodB converts an amplitude value to decibels: 20 * log10(|value|).
// Returns -Inf for zero values.
func ampTodB(value float64) float64 {
	a := math.Abs(value)
	if a == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(a)
}

func emptySummary() Summary {
	return Summary{
		RMS_dB:         math.Inf(-1),
		Peak_dB:        math.Inf(-1),
		CrestFactor_dB: math.Inf(-1),
	}
}

// Summarize computes all statistics in a single pass.
func Summarize(samples []float32) Summary {
	n := len(samples)
	if n == 0 {
		return emptySummary()
	}

	var (
		sum, c        float64 // Kahan-compensated sum for DC
		sumSq         float64
		peak          float64
		zeroCrossings int
		clipped       int
	)

	for i, s := range samples {
		x := float64(s)

		y := x - c
		t := sum + y
		c = (t - sum) - y
		sum = t

		sumSq += x * x

		a := math.Abs(x)
		if a > peak {
			peak = a
		}
		if a > 1 {
			clipped++
		}

		if i > 0 && float64(samples[i-1])*x < 0 {
			zeroCrossings++
		}
	}

	nf := float64(n)
	rms := math.Sqrt(sumSq / nf)

	crestdB := 0.0
	if rms > 0 {
		crestdB = ampTodB(peak / rms)
	}

	return Summary{
		Length:         n,
		DC:             sum / nf,
		RMS:            rms,
		RMS_dB:         ampTodB(rms),
		Peak:           peak,
		Peak_dB:        ampTodB(peak),
		CrestFactor_dB: crestdB,
		ZeroCrossings:  zeroCrossings,
		Clipped:        clipped,
	}
}
