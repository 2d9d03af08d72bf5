// SPDX-License-Identifier: EPL-2.0

package audio

// Remix converts b to the given channel count.
//
// Down-mixing averages every input channel k into output channel
// k % channels, so stereo to mono is the plain average of left and right.
// Up-mixing repeats input channel c % b.Channels, so mono to stereo
// duplicates the signal on both sides.
func (b *Buffer) Remix(channels int) (*Buffer, error) {
	if channels <= 0 || b.Channels <= 0 {
		return nil, ErrInvalidChannels
	}

	out := &Buffer{SampleRate: b.SampleRate, Channels: channels}
	frames := b.Frames()
	if channels == b.Channels {
		out.Data = append([]float32(nil), b.Data[:frames*channels]...)
		return out, nil
	}

	out.Data = make([]float32, frames*channels)
	in := b.Channels

	if channels > in {
		for f := range frames {
			for c := range channels {
				out.Data[f*channels+c] = b.Data[f*in+c%in]
			}
		}
		return out, nil
	}

	// how many input channels fold into each output channel
	weight := make([]float32, channels)
	for k := range in {
		weight[k%channels]++
	}

	for f := range frames {
		dst := out.Data[f*channels : (f+1)*channels]
		for k := range in {
			dst[k%channels] += b.Data[f*in+k]
		}
		for c := range dst {
			dst[c] /= weight[c]
		}
	}
	return out, nil
}
