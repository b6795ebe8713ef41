// Package playback routes generated sample buffers to the default audio
// output device.
package playback

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"go.uber.org/zap"
)

// resampleQuality is the beep resampler quality used on rate mismatch.
const resampleQuality = 4

var errSeekRange = errors.New("playback: seek position out of range")

// Player plays a mono buffer and blocks until it finished or ctx is done.
type Player interface {
	Play(ctx context.Context, samples []float32, sampleRate int) error
	Close() error
}

// Speaker is a [Player] backed by the beep speaker package. Only one
// Speaker may be open per process.
type Speaker struct {
	rate   beep.SampleRate
	logger *zap.Logger
}

// OpenSpeaker initializes the output device at sampleRate with a buffer of
// bufferDuration.
func OpenSpeaker(sampleRate int, bufferDuration time.Duration, logger *zap.Logger) (*Speaker, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("playback sample rate must be > 0: %d", sampleRate)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	logger.Info("Initializing audio system...", zap.Int("sample_rate", sampleRate))

	sr := beep.SampleRate(sampleRate)
	if err := speaker.Init(sr, sr.N(bufferDuration)); err != nil {
		return nil, fmt.Errorf("failed to initialize audio device: %w", err)
	}
	return &Speaker{rate: sr, logger: logger}, nil
}

// Play streams samples to the device. Buffers at a different rate than the
// device are resampled.
func (s *Speaker) Play(ctx context.Context, samples []float32, sampleRate int) error {
	var stream beep.Streamer = NewStream(samples)
	if src := beep.SampleRate(sampleRate); src != s.rate {
		stream = beep.Resample(resampleQuality, src, s.rate, stream)
	}

	done := make(chan struct{})
	speaker.Play(beep.Seq(stream, beep.Callback(func() { close(done) })))

	s.logger.Info("Playing audio... Press Ctrl+C to stop.", zap.Duration("length", s.rate.D(len(samples))))

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		speaker.Clear()
		return ctx.Err()
	}
}

// Close releases the output device.
func (s *Speaker) Close() error {
	speaker.Close()
	return nil
}
