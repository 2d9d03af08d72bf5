// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/ik5/sfx/utils"
)

// readFrames is how many frames ReadAll requests from a source per call.
const readFrames = 4096

// maxEmptyReads bounds consecutive reads that return no data and no error.
const maxEmptyReads = 100

// Buffer is a fully decoded clip held in memory as interleaved float32
// samples. Sound effects are short, so every processing step works on the
// whole clip at once.
type Buffer struct {
	SampleRate int
	Channels   int
	Data       []float32
}

// ReadAll drains src into a Buffer. It does not close src.
func ReadAll(src Source) (*Buffer, error) {
	channels := src.Channels()
	if channels <= 0 {
		return nil, ErrInvalidChannels
	}
	if src.SampleRate() <= 0 {
		return nil, ErrInvalidSampleRate
	}

	buf := &Buffer{
		SampleRate: src.SampleRate(),
		Channels:   channels,
	}
	chunk := make([]float32, readFrames*channels)
	empty := 0

	for {
		n, err := src.ReadSamples(chunk)
		if n > 0 {
			buf.Data = append(buf.Data, chunk[:n]...)
			empty = 0
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}
		if n == 0 {
			empty++
			if empty >= maxEmptyReads {
				return nil, io.ErrNoProgress
			}
		}
	}

	// drop a trailing partial frame
	buf.Data = buf.Data[:len(buf.Data)-len(buf.Data)%channels]
	return buf, nil
}

// Frames is the number of sample frames (one sample per channel).
func (b *Buffer) Frames() int {
	if b.Channels <= 0 {
		return 0
	}
	return len(b.Data) / b.Channels
}

func (b *Buffer) Duration() time.Duration {
	if b.SampleRate <= 0 {
		return 0
	}
	return time.Duration(int64(b.Frames()) * int64(time.Second) / int64(b.SampleRate))
}

// Slice returns a copy of the frames between start and start+length.
// A range running past the end is cut at the end of the buffer.
func (b *Buffer) Slice(start, length time.Duration) (*Buffer, error) {
	if start < 0 || length <= 0 {
		return nil, ErrInvalidRange
	}

	first := b.frameAt(start)
	if first >= b.Frames() {
		return nil, ErrOutOfRange
	}
	last := min(first+b.frameAt(length), b.Frames())

	out := &Buffer{
		SampleRate: b.SampleRate,
		Channels:   b.Channels,
		Data:       make([]float32, (last-first)*b.Channels),
	}
	copy(out.Data, b.Data[first*b.Channels:last*b.Channels])
	return out, nil
}

// Convert remixes and resamples b to the given format, in whichever order
// processes fewer samples.
func (b *Buffer) Convert(rate, channels int) (*Buffer, error) {
	if channels < b.Channels {
		remixed, err := b.Remix(channels)
		if err != nil {
			return nil, err
		}
		return remixed.Resample(rate)
	}

	resampled, err := b.Resample(rate)
	if err != nil {
		return nil, err
	}
	return resampled.Remix(channels)
}

// PCM16 converts the buffer to signed 16-bit samples.
func (b *Buffer) PCM16() []int16 {
	out := make([]int16, len(b.Data))
	for i, s := range b.Data {
		out[i] = utils.Float32ToInt16(s)
	}
	return out
}

func (b *Buffer) frameAt(d time.Duration) int {
	return int(math.Round(d.Seconds() * float64(b.SampleRate)))
}
