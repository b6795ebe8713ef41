// Package noise synthesizes colored noise buffers.
//
// A [Generator] drives a small stateful filter per noise [Type] with a
// uniform random [Source] in [-1, 1]:
//
//   - White: the raw source.
//   - Pink: six leaky one-pole stages plus a delayed white tap
//     (Paul Kellet's refinement of the Voss-McCartney approximation),
//     about -3 dB/octave.
//   - Brown: a clamped leaky integrator with a fixed output gain of 3.5, so
//     emitted values lie in [-3.5, 3.5].
//   - Blue: half the first difference of white noise.
//   - Gray: white noise modulated by |sin(2*pi*f*t)|, rendered in one-second
//     blocks whose envelope phase restarts every block.
//
// Output is a complete in-memory buffer; the package has no streaming API.
// A Generator is not safe for concurrent use. Parallel renders need one
// Generator (and one Source) per goroutine.
package noise
