// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides synthetic audio sources and fake playback
// components for tests.
package audiotest

import (
	"io"
	"math"
)

// MockSource generates a fixed number of frames from a waveform function.
// It implements the audio.Source interface (without importing it to avoid cycles).
type MockSource struct {
	sampleRate int
	channels   int
	frames     int // total frames to generate
	generated  int // frames generated so far
	waveform   func(frame int, channel int) float32

	// ChunkLimit caps the number of frames returned per ReadSamples call.
	// Zero means no cap.
	ChunkLimit int
	// Err, when set, is returned instead of io.EOF once the frames are exhausted.
	Err error
	// Closed reports whether Close has been called.
	Closed bool
}

// NewMockSource creates a new mock audio source producing frames frames.
func NewMockSource(sampleRate, channels, frames int, waveform func(frame int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		waveform:   waveform,
	}
}

// NewSilentSource creates a mock source that generates silence.
func NewSilentSource(sampleRate, channels, frames int) *MockSource {
	return NewConstantSource(sampleRate, channels, frames, 0)
}

// NewSineSource creates a mock source that generates a sine wave on every channel.
func NewSineSource(sampleRate, channels, frames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(frame int, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantSource creates a mock source with constant value.
func NewConstantSource(sampleRate, channels, frames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(int, int) float32 {
		return value
	})
}

// NewRampSource creates a mock source whose value is the frame index
// scaled by step, identical on every channel. Handy for checking offsets.
func NewRampSource(sampleRate, channels, frames int, step float32) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(frame int, _ int) float32 {
		return float32(frame) * step
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }

func (m *MockSource) Close() error {
	m.Closed = true
	return nil
}

// Reset rewinds the source so it can be read again.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.frames {
		return 0, m.endErr()
	}

	n := min(len(dst)/m.channels, m.frames-m.generated)
	if m.ChunkLimit > 0 {
		n = min(n, m.ChunkLimit)
	}

	for f := range n {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.waveform(m.generated+f, ch)
		}
	}
	m.generated += n

	if m.generated >= m.frames {
		return n * m.channels, m.endErr()
	}
	return n * m.channels, nil
}

func (m *MockSource) endErr() error {
	if m.Err != nil {
		return m.Err
	}
	return io.EOF
}
