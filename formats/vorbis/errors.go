// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

var (
	// ErrInvalidVorbis wraps errors from the Ogg/Vorbis stream parser.
	ErrInvalidVorbis = errors.New("invalid Ogg Vorbis stream")

	// ErrShortBuffer is returned when dst cannot hold a single frame.
	ErrShortBuffer = errors.New("buffer shorter than one frame")
)
