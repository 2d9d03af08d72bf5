// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"sync"
	"time"

	"github.com/ik5/sfx"
)

// Backend is an in-memory sfx.Backend that records what it was asked to do.
type Backend struct {
	mu sync.Mutex

	// LoadErr maps ids to the error Load returns for them.
	LoadErr map[string]error
	// PlayErr, when set, is returned by every Voice.Play.
	PlayErr error
	// VoiceErr, when set, is returned by every Clip.NewVoice.
	VoiceErr error

	loads  map[string]int
	clips  map[string]*Clip
	voices []*Voice
}

func NewBackend() *Backend {
	return &Backend{
		LoadErr: make(map[string]error),
		loads:   make(map[string]int),
		clips:   make(map[string]*Clip),
	}
}

func (b *Backend) Load(id, location string) (sfx.Clip, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.loads[id]++
	if err := b.LoadErr[id]; err != nil {
		return nil, err
	}

	c := &Clip{backend: b, ID: id, Location: location}
	b.clips[id] = c

	return c, nil
}

// Loads is the number of Load calls for id.
func (b *Backend) Loads(id string) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.loads[id]
}

// TotalLoads is the number of Load calls for every id.
func (b *Backend) TotalLoads() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := 0
	for _, c := range b.loads {
		n += c
	}
	return n
}

// Clip returns the last clip loaded for id.
func (b *Backend) Clip(id string) *Clip {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.clips[id]
}

// Voices returns every voice created so far, oldest first.
func (b *Backend) Voices() []*Voice {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]*Voice, len(b.voices))
	copy(out, b.voices)
	return out
}

type Clip struct {
	backend  *Backend
	ID       string
	Location string
}

func (c *Clip) NewVoice() (sfx.Voice, error) {
	b := c.backend

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.VoiceErr != nil {
		return nil, b.VoiceErr
	}

	v := &Voice{clip: c, playErr: b.PlayErr, PlayedAt: -1}
	b.voices = append(b.voices, v)

	return v, nil
}

// Voice records its state and the calls made on it.
type Voice struct {
	mu sync.Mutex

	clip    *Clip
	playErr error

	playing  bool
	volume   float64
	loop     bool
	position time.Duration

	// Plays counts Play calls, including rejected ones.
	Plays int
	// Pauses counts Pause calls.
	Pauses int
	// Seeks lists every Seek target in call order.
	Seeks []time.Duration
	// PlayedAt is the position when Play was first called, or -1.
	PlayedAt time.Duration
	// SeekErr, when set, is returned by Seek and the cursor stays put.
	SeekErr error
}

// Clip is the clip the voice was created from.
func (v *Voice) Clip() *Clip { return v.clip }

func (v *Voice) Play() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.Plays == 0 {
		v.PlayedAt = v.position
	}
	v.Plays++

	if v.playErr != nil {
		return v.playErr
	}
	v.playing = true

	return nil
}

func (v *Voice) Pause() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.Pauses++
	v.playing = false
}

func (v *Voice) Playing() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.playing
}

func (v *Voice) SetVolume(vol float64) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.volume = vol
}

func (v *Voice) Volume() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.volume
}

func (v *Voice) SetLoop(loop bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.loop = loop
}

func (v *Voice) Loop() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.loop
}

func (v *Voice) Seek(pos time.Duration) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.Seeks = append(v.Seeks, pos)
	if v.SeekErr != nil {
		return v.SeekErr
	}
	v.position = pos

	return nil
}

func (v *Voice) Position() time.Duration {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.position
}
