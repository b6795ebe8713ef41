// Package spectrum turns a real sample buffer into a coarse linear magnitude
// profile for display.
//
// [Analyze] runs a forward DFT over the whole buffer (no windowing, no
// padding), keeps bins 0..N/2, normalizes each magnitude by N and sums the
// result into a fixed number of contiguous linear bins. Transforms use
// algo-fft plans, which accept any N.
package spectrum
