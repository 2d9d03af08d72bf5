// SPDX-License-Identifier: EPL-2.0

package audio

import "github.com/ik5/sfx/utils"

// lowPassAlpha is the one-pole filter coefficient applied before
// downsampling. It is a cheap stand-in for a proper FIR filter.
const lowPassAlpha = 0.5

// Resample converts b to rate using Catmull-Rom cubic interpolation.
// The result always has a new backing array.
func (b *Buffer) Resample(rate int) (*Buffer, error) {
	if rate <= 0 || b.SampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if b.Channels <= 0 {
		return nil, ErrInvalidChannels
	}

	out := &Buffer{SampleRate: rate, Channels: b.Channels}
	frames := b.Frames()
	if rate == b.SampleRate || frames == 0 {
		out.Data = append([]float32(nil), b.Data...)
		return out, nil
	}

	src := b.Data
	if rate < b.SampleRate {
		src = lowPass(b.Data, b.Channels)
	}

	outFrames := int(int64(frames) * int64(rate) / int64(b.SampleRate))
	out.Data = make([]float32, outFrames*b.Channels)
	ratio := float64(b.SampleRate) / float64(rate)
	ch := b.Channels

	at := func(frame, c int) float32 {
		frame = max(0, min(frame, frames-1))
		return src[frame*ch+c]
	}

	for i := range outFrames {
		pos := float64(i) * ratio
		idx := int(pos)
		x := float32(pos - float64(idx))

		for c := range ch {
			out.Data[i*ch+c] = utils.CubicInterpolate(
				at(idx-1, c), at(idx, c), at(idx+1, c), at(idx+2, c), x)
		}
	}
	return out, nil
}

func lowPass(data []float32, channels int) []float32 {
	out := make([]float32, len(data))
	state := make([]float32, channels)
	// seed with the first frame to avoid a fade-in transient
	copy(state, data[:min(channels, len(data))])

	for i, s := range data {
		c := i % channels
		state[c] = lowPassAlpha*s + (1-lowPassAlpha)*state[c]
		out[i] = state[c]
	}
	return out
}
