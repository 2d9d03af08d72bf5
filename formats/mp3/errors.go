// SPDX-License-Identifier: EPL-2.0

package mp3

import "errors"

// ErrInvalidMP3 wraps errors from the MP3 frame parser.
var ErrInvalidMP3 = errors.New("invalid MP3 stream")
