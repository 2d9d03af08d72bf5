// SPDX-License-Identifier: EPL-2.0

package sfx

import "time"

// Backend turns a source location into a loaded clip.
//
// Load must not block on I/O: it starts loading and returns a Clip right
// away. Errors it returns are the ones that can be known up front, such as
// an unsupported format.
type Backend interface {
	Load(id, location string) (Clip, error)
}

// Clip is a loaded (or loading) sound. Each call to NewVoice returns an
// independent playable handle, so one clip can sound several times at once.
type Clip interface {
	NewVoice() (Voice, error)
}

// Voice is one playable handle derived from a Clip.
type Voice interface {
	Play() error
	Pause()
	Playing() bool

	SetVolume(v float64)
	Volume() float64

	SetLoop(loop bool)
	Loop() bool

	// Seek moves the play cursor to pos from the start of the clip.
	Seek(pos time.Duration) error
	Position() time.Duration
}
