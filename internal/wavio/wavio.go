// Package wavio writes generated sample buffers as mono 16-bit PCM WAV files.
package wavio

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-noise/dsp/core"
)

const (
	bitDepth    = 16
	numChannels = 1
	formatPCM   = 1
)

// Quantize clamps s to [-1, 1] and scales it to a signed 16-bit value,
// truncating toward zero.
func Quantize(s float32) int16 {
	return int16(core.ClampFloat32(s, -1, 1) * math.MaxInt16)
}

// WriteFile creates path and encodes samples into it.
func WriteFile(path string, samples []float32, sampleRate int) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", path, err)
	}

	defer func() {
		cerr := file.Close()
		if cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	return Encode(file, samples, sampleRate)
}

// Encode writes a complete WAV stream of samples to w.
func Encode(w io.WriteSeeker, samples []float32, sampleRate int) error {
	if sampleRate <= 0 {
		return fmt.Errorf("wav sample rate must be > 0: %d", sampleRate)
	}

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: numChannels,
			SampleRate:  sampleRate,
		},
		SourceBitDepth: bitDepth,
		Data:           make([]int, len(samples)),
	}
	for i, s := range samples {
		buf.Data[i] = int(Quantize(s))
	}

	enc := wav.NewEncoder(w, sampleRate, bitDepth, numChannels, formatPCM)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("failed to write samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to close encoder: %w", err)
	}
	return nil
}
