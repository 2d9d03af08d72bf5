// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// Decoding is done with github.com/go-audio/wav, which walks the RIFF
// chunks, so files with LIST/INFO or other extra chunks before the data
// are read correctly.
//
// # Supported Formats
//
//   - Integer PCM with 8, 16, 24 or 32 bits per sample
//   - Any channel count
//   - Any sample rate
//
// IEEE float and compressed WAV payloads are rejected with
// ErrOnlyPCMSupported.
//
// # Decoding WAV Files
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("coin.wav")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf, err := audio.ReadAll(source)
//
// The decoder accepts any io.Reader. Readers that cannot seek are buffered
// in memory first, which is fine for sound effects.
//
// # Writing WAV Files
//
// WriteWAV16 writes interleaved 16-bit PCM with a canonical 44-byte header:
//
//	out, _ := os.Create("coin-sample.wav")
//	err := wav.WriteWAV16(out, 44100, 2, pcm)
package wav
