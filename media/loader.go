// SPDX-License-Identifier: EPL-2.0

package media

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"
	"sync"

	"github.com/ik5/sfx/audio"
	"github.com/ik5/sfx/formats"
)

// Loader fetches and decodes sound sources.
type Loader struct {
	// Formats picks a decoder by extension. Nil means formats.NewRegistry().
	Formats *audio.Registry
	// FS, when set, serves every location that is not an http(s) URL.
	// Otherwise those locations are opened from the OS file system.
	FS fs.FS
	// Client fetches http(s) locations. Nil means http.DefaultClient.
	Client *http.Client
}

var defaultFormats = sync.OnceValue(formats.NewRegistry)

func (l *Loader) formats() *audio.Registry {
	if l.Formats != nil {
		return l.Formats
	}
	return defaultFormats()
}

// Decoder returns the decoder registered for location's extension.
func (l *Loader) Decoder(location string) (audio.Decoder, error) {
	dec, err := l.formats().Lookup(location)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, location)
	}
	return dec, nil
}

// Open returns the raw bytes of location.
func (l *Loader) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	if isURL(location) {
		return l.get(ctx, location)
	}

	if l.FS != nil {
		return l.FS.Open(path.Clean(strings.TrimPrefix(location, "/")))
	}
	return os.Open(location)
}

// Decode fetches location and decodes it completely.
func (l *Loader) Decode(ctx context.Context, location string) (*audio.Buffer, error) {
	dec, err := l.Decoder(location)
	if err != nil {
		return nil, err
	}
	return l.DecodeWith(ctx, location, dec)
}

// DecodeWith fetches location and decodes it completely with dec.
func (l *Loader) DecodeWith(ctx context.Context, location string, dec audio.Decoder) (*audio.Buffer, error) {
	rc, err := l.Open(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", location, err)
	}
	defer rc.Close()

	src, err := dec.Decode(rc)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", location, err)
	}
	defer src.Close()

	buf, err := audio.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", location, err)
	}
	return buf, nil
}

func (l *Loader) get(ctx context.Context, location string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, err
	}

	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: %s", ErrBadStatus, resp.Status)
	}
	return resp.Body, nil
}

func isURL(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}
