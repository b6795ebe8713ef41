package noise

import "errors"

var (
	// ErrUnknownType is returned for a [Type] outside the supported set.
	ErrUnknownType = errors.New("noise: unknown noise type")
	// ErrTooLong is returned when a duration needs more than [MaxSamples] samples.
	ErrTooLong = errors.New("noise: duration exceeds the maximum sample count")
)
