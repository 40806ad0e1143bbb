// Package clock abstracts wall-clock reads so that elements which stamp
// the current time onto frames can be fed a deterministic (or failing)
// clock in tests.
package clock

import (
	"time"
)

// Clock is a microsecond-resolution wall-clock.
type Clock interface {
	// GetTimeOfDay returns the current wall-clock time split into whole
	// seconds since the Unix epoch and the microseconds fraction
	// (0 <= usec < 1_000_000).
	GetTimeOfDay() (sec int64, usec int64, err error)
}

type systemClock struct{}

var _ Clock = systemClock{}

func (systemClock) GetTimeOfDay() (int64, int64, error) {
	now := time.Now()
	return now.Unix(), int64(now.Nanosecond() / 1000), nil
}

// System is the default Clock, backed by time.Now. It never fails.
var System Clock = systemClock{}

// EpochMicros folds a (sec, usec) clock reading into the amount of
// microseconds since the Unix epoch.
func EpochMicros(sec int64, usec int64) uint64 {
	return uint64(sec)*1_000_000 + uint64(usec)
}
