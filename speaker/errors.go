// SPDX-License-Identifier: EPL-2.0

package speaker

import (
	"errors"

	"github.com/ik5/sfx/audio"
)

var (
	// ErrNotReady is returned by Play before the audio device has started.
	ErrNotReady = errors.New("audio device not ready")
	// ErrUnsupportedFormat is returned by Load when no decoder matches the
	// location's extension.
	ErrUnsupportedFormat = audio.ErrUnsupportedFormat
	// ErrClosed is returned by Load after Close.
	ErrClosed = errors.New("speaker closed")
)
