// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

type failingWriter struct{ after int }

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.after <= 0 {
		return 0, errors.New("write failed")
	}
	w.after--
	return len(p), nil
}

func TestWriteWAV16_Header(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		rate       int
		channels   int
		samples    []int16
		byteRate   uint32
		blockAlign uint16
	}{
		{"mono 8k", 8000, 1, []int16{1, 2, 3}, 16000, 2},
		{"stereo 44.1k", 44100, 2, []int16{1, 2, 3, 4}, 176400, 4},
		{"empty", 22050, 1, nil, 44100, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := WriteWAV16(&buf, tt.rate, tt.channels, tt.samples); err != nil {
				t.Fatalf("WriteWAV16() error = %v", err)
			}

			data := buf.Bytes()
			if len(data) != headerSize+2*len(tt.samples) {
				t.Fatalf("len = %d, want %d", len(data), headerSize+2*len(tt.samples))
			}
			if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" ||
				string(data[12:16]) != "fmt " || string(data[36:40]) != "data" {
				t.Fatalf("bad chunk ids in header %q", data[:40])
			}
			if got := binary.LittleEndian.Uint32(data[4:8]); got != uint32(len(data)-8) {
				t.Errorf("RIFF size = %d, want %d", got, len(data)-8)
			}
			if got := binary.LittleEndian.Uint16(data[22:24]); got != uint16(tt.channels) {
				t.Errorf("channels = %d, want %d", got, tt.channels)
			}
			if got := binary.LittleEndian.Uint32(data[24:28]); got != uint32(tt.rate) {
				t.Errorf("sample rate = %d, want %d", got, tt.rate)
			}
			if got := binary.LittleEndian.Uint32(data[28:32]); got != tt.byteRate {
				t.Errorf("byte rate = %d, want %d", got, tt.byteRate)
			}
			if got := binary.LittleEndian.Uint16(data[32:34]); got != tt.blockAlign {
				t.Errorf("block align = %d, want %d", got, tt.blockAlign)
			}
			if got := binary.LittleEndian.Uint32(data[40:44]); got != uint32(2*len(tt.samples)) {
				t.Errorf("data size = %d, want %d", got, 2*len(tt.samples))
			}
		})
	}
}

func TestWriteWAV16_SpansChunks(t *testing.T) {
	t.Parallel()

	samples := make([]int16, writeChunk*2+7)
	for i := range samples {
		samples[i] = int16(i)
	}

	var buf bytes.Buffer
	if err := WriteWAV16(&buf, 8000, 1, samples); err != nil {
		t.Fatal(err)
	}

	data := buf.Bytes()[headerSize:]
	for _, i := range []int{0, writeChunk - 1, writeChunk, len(samples) - 1} {
		if got := int16(binary.LittleEndian.Uint16(data[2*i:])); got != samples[i] {
			t.Errorf("sample %d = %d, want %d", i, got, samples[i])
		}
	}
}

func TestWriteWAV16_Errors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteWAV16(&buf, 8000, 0, nil); !errors.Is(err, ErrInvalidChannels) {
		t.Errorf("channels=0 error = %v, want ErrInvalidChannels", err)
	}
	if err := WriteWAV16(&buf, 8000, 2, []int16{1, 2, 3}); !errors.Is(err, ErrPartialFrame) {
		t.Errorf("partial frame error = %v, want ErrPartialFrame", err)
	}
	if err := WriteWAV16(&failingWriter{}, 8000, 1, []int16{1}); err == nil {
		t.Error("header write failure not reported")
	}
	if err := WriteWAV16(&failingWriter{after: 1}, 8000, 1, []int16{1}); err == nil {
		t.Error("data write failure not reported")
	}
}

func BenchmarkWriteWAV16(b *testing.B) {
	samples := make([]int16, 44100*2)
	var buf bytes.Buffer

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		buf.Reset()
		if err := WriteWAV16(&buf, 44100, 2, samples); err != nil {
			b.Fatal(err)
		}
	}
}
