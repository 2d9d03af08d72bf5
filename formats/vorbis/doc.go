// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis, a pure Go decoder.
// Vorbis is a common choice for game sound effects: small files and no
// licensing concerns.
//
// # Decoding Vorbis Files
//
//	decoder := vorbis.Decoder{}
//	file, _ := os.Open("door.ogg")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // errors.Is(err, vorbis.ErrInvalidVorbis) for malformed input
//	}
//
//	buf, err := audio.ReadAll(source)
//
// Samples are float32 in [-1.0, 1.0], interleaved, with the channel count
// and sample rate of the file. ReadSamples always returns whole frames.
package vorbis
