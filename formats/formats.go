// SPDX-License-Identifier: EPL-2.0

// Package formats wires every decoder of this module into an
// audio.Registry.
package formats

import (
	"github.com/ik5/sfx/audio"
	"github.com/ik5/sfx/formats/aiff"
	"github.com/ik5/sfx/formats/mp3"
	"github.com/ik5/sfx/formats/vorbis"
	"github.com/ik5/sfx/formats/wav"
)

// NewRegistry returns a registry with the WAV, MP3, Ogg Vorbis and AIFF
// decoders under their usual file extensions.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	return reg
}
