// SPDX-License-Identifier: EPL-2.0

package sfx

import (
	"math"
	"time"
)

// Sample is a sub-range of a sound: playback seeks to Start and stops
// Duration later.
type Sample struct {
	Start    time.Duration
	Duration time.Duration
}

// SampleAt builds a Sample from offsets in seconds.
func SampleAt(start, duration float64) Sample {
	return Sample{
		Start:    seconds(start),
		Duration: seconds(duration),
	}
}

func seconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}

// Valid reports whether the sample has a non-negative start and a positive
// duration.
func (s Sample) Valid() bool {
	return s.Start >= 0 && s.Duration > 0
}
