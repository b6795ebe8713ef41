package playback

import "github.com/faiface/beep"

// monoStream plays a mono float buffer on both speaker channels.
type monoStream struct {
	samples []float32
	pos     int
}

// NewStream returns a beep.StreamSeeker over samples.
func NewStream(samples []float32) beep.StreamSeeker {
	return &monoStream{samples: samples}
}

func (s *monoStream) Stream(buf [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.samples) {
		return 0, false
	}
	for n < len(buf) && s.pos < len(s.samples) {
		v := float64(s.samples[s.pos])
		buf[n][0] = v
		buf[n][1] = v
		n++
		s.pos++
	}
	return n, true
}

func (s *monoStream) Err() error { return nil }

func (s *monoStream) Len() int { return len(s.samples) }

func (s *monoStream) Position() int { return s.pos }

func (s *monoStream) Seek(p int) error {
	if p < 0 || p > len(s.samples) {
		return errSeekRange
	}
	s.pos = p
	return nil
}
