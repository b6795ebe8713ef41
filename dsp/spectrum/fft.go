package spectrum

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// halfSpectrum returns DFT coefficients 0..N/2 (inclusive) of the real
// sequence x, with N = len(x). Any N is transformed as-is, without padding.
func halfSpectrum(x []float32) ([]complex128, error) {
	n := len(x)
	if n == 0 {
		return nil, nil
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("spectrum: plan for %d samples: %w", n, err)
	}

	in := make([]complex128, n)
	for i, v := range x {
		in[i] = complex(float64(v), 0)
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("spectrum: forward transform of %d samples: %w", n, err)
	}
	return out[:n/2+1], nil
}
