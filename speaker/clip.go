// SPDX-License-Identifier: EPL-2.0

package speaker

import (
	"sync"
	"time"

	"github.com/ik5/sfx"
)

// Clip is a sound being loaded, or loaded, into memory as device-format
// PCM. Voices share the PCM data.
type Clip struct {
	s        *Speaker
	id       string
	location string

	done chan struct{}

	mu      sync.Mutex
	loaded  bool
	pcm     []byte
	err     error
	waiters []func()
}

var _ sfx.Clip = (*Clip)(nil)

func newClip(s *Speaker, id, location string) *Clip {
	return &Clip{
		s:        s,
		id:       id,
		location: location,
		done:     make(chan struct{}),
	}
}

func (c *Clip) ID() string { return c.id }

func (c *Clip) Location() string { return c.location }

// Ready is closed when loading has finished, successfully or not.
func (c *Clip) Ready() <-chan struct{} { return c.done }

// Err is the loading error. It is nil while loading.
func (c *Clip) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.err
}

// Duration is the clip length, or zero while loading.
func (c *Clip) Duration() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.s.bytesToDuration(int64(len(c.pcm)))
}

// NewVoice returns an independent voice over the clip. It works while the
// clip is still loading.
func (c *Clip) NewVoice() (sfx.Voice, error) {
	return newVoice(c), nil
}

// finish stores the result and runs the waiters before closing Ready.
func (c *Clip) finish(pcm []byte, err error) {
	c.mu.Lock()
	c.loaded = true
	c.pcm = pcm
	c.err = err
	waiters := c.waiters
	c.waiters = nil
	c.mu.Unlock()

	for _, fn := range waiters {
		fn()
	}
	close(c.done)
}

// state returns the data, whether loading has finished, and the loading
// error.
func (c *Clip) state() ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.pcm, c.loaded, c.err
}

// whenLoaded runs fn once loading has finished. If it already has, fn
// runs before whenLoaded returns.
func (c *Clip) whenLoaded(fn func()) {
	c.mu.Lock()
	if c.loaded {
		c.mu.Unlock()
		fn()
		return
	}
	c.waiters = append(c.waiters, fn)
	c.mu.Unlock()
}
