// Package chart renders magnitude bins as a fixed-size text bar chart.
package chart

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"
)

// DefaultHeight is the number of rows drawn by the noisegen command.
const DefaultHeight = 20

const (
	barMark   = '#'
	emptyMark = ' '
)

// Render draws one column per bin and height rows, each bar scaled against
// the largest bin. Every row is prefixed with the value at its top edge.
// An all-zero input draws only the axis.
func Render(w io.Writer, bins []float64, height int) error {
	if height <= 0 {
		return fmt.Errorf("chart height must be > 0: %d", height)
	}

	maxBin := 0.0
	for _, v := range bins {
		if v > maxBin {
			maxBin = v
		}
	}

	levels := make([]int, len(bins))
	if maxBin > 0 {
		for i, v := range bins {
			levels[i] = int(math.Round(v / maxBin * float64(height)))
		}
	}

	bw := bufio.NewWriter(w)
	row := make([]rune, len(bins))
	for r := height; r >= 1; r-- {
		for i, lvl := range levels {
			if lvl >= r {
				row[i] = barMark
			} else {
				row[i] = emptyMark
			}
		}
		label := maxBin * float64(r) / float64(height)
		fmt.Fprintf(bw, "%10.4f ┤%s\n", label, strings.TrimRight(string(row), string(emptyMark)))
	}
	fmt.Fprintf(bw, "%10.4f └%s\n", 0.0, strings.Repeat("─", len(bins)))

	return bw.Flush()
}
