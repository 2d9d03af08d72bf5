// SPDX-License-Identifier: EPL-2.0

package sfx

import (
	"log/slog"
	"sync"

	"github.com/ik5/sfx/utils"
	"github.com/patrickmn/go-cache"
)

// Context is the state shared by every Manager attached to it: the cache
// of loaded clips, the global volume and mute flag, the scheduler that
// runs deferred playback work and the reporter for non-fatal problems.
//
// Managers attached to one Context are not isolated from each other: a
// clip loaded by one is reused by all, and muting through one mutes them
// all. Use separate contexts for isolation.
type Context struct {
	backend  Backend
	clips    *cache.Cache
	sched    Scheduler
	reporter Reporter
	loop     *EventLoop

	// loadMu serializes check-then-load so each id is loaded once
	loadMu sync.Mutex

	mu     sync.RWMutex
	volume float64
	muted  bool
}

type ContextOption func(*Context)

// WithScheduler replaces the default EventLoop.
func WithScheduler(s Scheduler) ContextOption {
	return func(c *Context) {
		c.sched = s
	}
}

// WithReporter replaces the default LogReporter.
func WithReporter(r Reporter) ContextOption {
	return func(c *Context) {
		c.reporter = r
	}
}

// NewContext creates a context playing through backend. Without
// WithScheduler it starts an EventLoop, which Close stops.
func NewContext(backend Backend, opts ...ContextOption) *Context {
	c := &Context{
		backend: backend,
		clips:   cache.New(cache.NoExpiration, 0),
		volume:  DefaultVolume,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.sched == nil {
		c.loop = NewEventLoop()
		c.sched = c.loop
	}
	if c.reporter == nil {
		c.reporter = LogReporter{Logger: slog.Default()}
	}

	return c
}

// SetVolume stores v clamped to [0, 1]. Voices already created keep the
// volume they were given.
func (c *Context) SetVolume(v float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.volume = utils.ClampUnit(v)
}

func (c *Context) Volume() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.volume
}

// SetMuted stops new play calls from producing sound. Voices already
// playing are not paused.
func (c *Context) SetMuted(muted bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.muted = muted
}

func (c *Context) Muted() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.muted
}

// Cached reports whether a clip for id has been loaded (or started loading).
func (c *Context) Cached(id string) bool {
	_, ok := c.clips.Get(id)
	return ok
}

// Len is the number of cached clips.
func (c *Context) Len() int {
	return c.clips.ItemCount()
}

// Close stops the EventLoop created by NewContext, if any.
// Cached clips stay usable.
func (c *Context) Close() error {
	if c.loop != nil {
		return c.loop.Close()
	}
	return nil
}

func (c *Context) clip(id string) (Clip, bool) {
	v, ok := c.clips.Get(id)
	if !ok {
		return nil, false
	}
	return v.(Clip), true
}

// load returns the cached clip for id, asking the backend only when the
// id has never been loaded.
func (c *Context) load(id, location string) (Clip, error) {
	c.loadMu.Lock()
	defer c.loadMu.Unlock()

	if clip, ok := c.clip(id); ok {
		return clip, nil
	}

	clip, err := c.backend.Load(id, location)
	if err != nil {
		return nil, err
	}
	c.clips.Set(id, clip, cache.NoExpiration)

	return clip, nil
}

func (c *Context) report(err error) {
	c.reporter.Report(err)
}

