// Command noisegen generates colored noise.
//
// Usage:
//
//	noisegen [flags] <white|pink|brown|blue|gray>
//
// Examples:
//
//	noisegen pink -o pink.wav
//	noisegen brown --play -d 30
//	noisegen gray -f 500 --fft -s 8000
//	noisegen white --seed 42 -o white.wav --fft
package main

import "github.com/cwbudde/algo-noise/internal/cli"

func main() {
	cli.Execute()
}
