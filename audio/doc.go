// SPDX-License-Identifier: EPL-2.0

// Package audio provides the decoding interfaces and in-memory clip
// processing used to prepare sound effects for playback.
//
// This package contains:
//   - Source and Decoder interfaces implemented by the formats packages
//   - Registry for choosing a decoder by file extension
//   - Buffer, a fully decoded clip with resampling, channel remixing,
//     slicing and 16-bit conversion
//
// # Source Interface
//
// The Source interface is the contract between decoders and the rest of
// the module:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// # Choosing a Decoder
//
// Decoders are registered by extension and looked up by source location.
// Locations can be file paths or URLs:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	dec, err := reg.Lookup("https://example.com/sfx/coin.wav?v=2")
//
// # Buffers
//
// Sound effects are short, so they are decoded completely before playback:
//
//	src, _ := dec.Decode(file)
//	buf, _ := audio.ReadAll(src)
//
//	// match the output device
//	out, _ := buf.Convert(44100, 2)
//	pcm := out.PCM16()
//
// Resample uses Catmull-Rom cubic interpolation and a one-pole low-pass
// filter when downsampling. Remix averages channels when down-mixing and
// repeats them when up-mixing. Slice cuts a time range, which is how a
// sample of a sound is rendered offline.
package audio
