// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3, a pure Go decoder for
// MPEG-1 and MPEG-2 Layer III. The decoder always produces interleaved
// stereo; mono files are duplicated on both channels by go-mp3.
//
// # Decoding MP3 Files
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("laser.mp3")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // errors.Is(err, mp3.ErrInvalidMP3) for malformed input
//	}
//
//	buf, err := audio.ReadAll(source)
package mp3
