// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"net/url"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)
	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry maps file extensions (e.g., "wav", "mp3", "ogg") to decoders.
type Registry struct {
	codecs map[string]Decoder
	mtx    sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
	}
}

// Register binds d to format. The format is matched case-insensitively
// and may be given with or without the leading dot.
func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[normalizeFormat(format)] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	d, ok := r.codecs[normalizeFormat(format)]
	return d, ok
}

// Formats returns the registered format keys in sorted order.
func (r *Registry) Formats() []string {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	formats := make([]string, 0, len(r.codecs))
	for f := range r.codecs {
		formats = append(formats, f)
	}
	slices.Sort(formats)
	return formats
}

// Lookup picks the decoder for a source location by its extension.
// Locations may be file system paths or URLs; query strings and
// fragments are ignored.
func (r *Registry) Lookup(location string) (Decoder, error) {
	format := FormatOf(location)
	if format == "" {
		return nil, ErrUnsupportedFormat
	}

	d, ok := r.Get(format)
	if !ok {
		return nil, ErrUnsupportedFormat
	}
	return d, nil
}

// FormatOf returns the lower-case extension of location without the dot,
// or "" if it has none.
func FormatOf(location string) string {
	var ext string
	if strings.Contains(location, "://") {
		u, err := url.Parse(location)
		if err != nil {
			return ""
		}
		ext = path.Ext(u.Path)
	} else {
		ext = filepath.Ext(location)
	}
	return normalizeFormat(ext)
}

func normalizeFormat(format string) string {
	return strings.ToLower(strings.TrimPrefix(format, "."))
}
