// SPDX-License-Identifier: EPL-2.0

package sfx

import (
	"errors"
	"strconv"
)

var (
	// ErrNotFound means the sound has neither a cached clip nor a registry entry.
	ErrNotFound = errors.New("sound not found")
	// ErrNotConfigured means Preload was asked for an id missing from the registry.
	ErrNotConfigured = errors.New("sound not configured")
	// ErrNoCollection means no sample collection is registered for the sound.
	ErrNoCollection = errors.New("no sample collection registered")
	// ErrEmptySampleSet means a sample playback call got zero samples.
	ErrEmptySampleSet = errors.New("empty sample set")
	// ErrPlaybackRejected wraps a backend refusal to start a voice.
	ErrPlaybackRejected = errors.New("playback rejected")
	// ErrMuted is returned by play calls while the context is muted.
	// It is never reported.
	ErrMuted = errors.New("playback muted")

	ErrInvalidManifest = errors.New("invalid sound manifest")
)

// Error records a failed operation on a sound.
type Error struct {
	Op      string
	SoundID string
	Err     error
}

func (e *Error) Error() string {
	return "sfx: " + e.Op + " " + strconv.Quote(e.SoundID) + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }
