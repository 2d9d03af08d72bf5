// SPDX-License-Identifier: EPL-2.0

package sfx

import (
	"errors"
	"fmt"
	"maps"
	"math/rand/v2"
	"slices"
	"sync"

	"github.com/ik5/sfx/utils"
)

// DefaultVolume is the global volume set by New when WithVolume is not given.
const DefaultVolume = 0.7

// Registry maps sound identifiers to source locations.
type Registry map[string]string

// Picker returns an index in [0, n). It selects which sample of a
// collection is played.
type Picker func(n int) int

// Manager plays the sounds of a Registry through a shared Context.
type Manager struct {
	ctx      *Context
	registry Registry
	pick     Picker

	mu      sync.RWMutex
	samples map[string][]Sample
}

type Option func(*settings)

type settings struct {
	volume float64
	pick   Picker
}

// WithVolume sets the initial global volume, clamped to [0, 1].
func WithVolume(v float64) Option {
	return func(s *settings) {
		s.volume = v
	}
}

// WithPicker replaces the random sample selection.
func WithPicker(p Picker) Option {
	return func(s *settings) {
		s.pick = p
	}
}

// New creates a manager over a copy of registry. The initial volume is
// written to ctx, so it applies to every manager sharing ctx. New does no
// I/O.
func New(ctx *Context, registry Registry, opts ...Option) *Manager {
	s := settings{
		volume: DefaultVolume,
		pick:   rand.IntN,
	}
	for _, opt := range opts {
		opt(&s)
	}

	ctx.SetVolume(s.volume)

	return &Manager{
		ctx:      ctx,
		registry: maps.Clone(registry),
		pick:     s.pick,
		samples:  make(map[string][]Sample),
	}
}

// PlayOption adjusts a single play call.
type PlayOption func(*playSettings)

type playSettings struct {
	volume    float64
	hasVolume bool
	loop      bool
}

// PlayVolume overrides the global volume for one instance. The value is
// clamped to [0, 1].
func PlayVolume(v float64) PlayOption {
	return func(p *playSettings) {
		p.volume = v
		p.hasVolume = true
	}
}

// PlayLooped makes the instance loop. Sample playback ignores it.
func PlayLooped() PlayOption {
	return func(p *playSettings) {
		p.loop = true
	}
}

func (m *Manager) Context() *Context { return m.ctx }

// Registry returns a copy of the manager's registry.
func (m *Manager) Registry() Registry {
	return maps.Clone(m.registry)
}

// RegisterSampleCollection stores samples for id, replacing any earlier
// collection. Ranges are not checked against the sound's length.
func (m *Manager) RegisterSampleCollection(id string, samples []Sample) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.samples[id] = slices.Clone(samples)
}

// Samples returns the collection registered for id.
func (m *Manager) Samples(id string) ([]Sample, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.samples[id]
	return slices.Clone(s), ok
}

// Preload starts loading id unless the context already holds a clip for
// it. Loading is asynchronous; Preload returns once the backend has
// accepted the request.
func (m *Manager) Preload(id string) error {
	if m.ctx.Cached(id) {
		return nil
	}

	location, ok := m.registry[id]
	if !ok {
		return &Error{Op: "preload", SoundID: id, Err: ErrNotConfigured}
	}

	if _, err := m.ctx.load(id, location); err != nil {
		return &Error{Op: "preload", SoundID: id, Err: err}
	}

	return nil
}

// PreloadAll preloads every registered sound and joins the failures.
func (m *Manager) PreloadAll() error {
	var errs []error
	for _, id := range slices.Sorted(maps.Keys(m.registry)) {
		if err := m.Preload(id); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Play starts a new instance of id. The instance is returned before
// playback begins; the start runs on the context's scheduler, and a
// backend refusal at that point is only reported.
//
// While muted Play returns ErrMuted and schedules nothing.
func (m *Manager) Play(id string, opts ...PlayOption) (*Instance, error) {
	p := m.playSettings(opts)

	inst, err := m.prepare("play", id, p)
	if err != nil {
		return nil, err
	}
	inst.voice.SetLoop(p.loop)

	m.start("play", inst)

	return inst, nil
}

// PlaySample plays one of samples, chosen by the manager's Picker. The
// instance is positioned at the sample's start before playback is
// scheduled, and stopped Duration after scheduling.
func (m *Manager) PlaySample(id string, samples []Sample, opts ...PlayOption) (*Instance, error) {
	return m.playSample("play sample", id, samples, opts)
}

// PlayRegisteredSample plays a sample from the collection registered
// for id.
func (m *Manager) PlayRegisteredSample(id string, opts ...PlayOption) (*Instance, error) {
	const op = "play registered sample"

	samples, ok := m.Samples(id)
	if !ok {
		return nil, m.fail(op, id, ErrNoCollection)
	}

	return m.playSample(op, id, samples, opts)
}

// Stop stops inst. A nil inst is ignored.
func (m *Manager) Stop(inst *Instance) {
	inst.Stop()
}

func (m *Manager) SetVolume(v float64) { m.ctx.SetVolume(v) }

func (m *Manager) Volume() float64 { return m.ctx.Volume() }

func (m *Manager) SetMuted(muted bool) { m.ctx.SetMuted(muted) }

func (m *Manager) Muted() bool { return m.ctx.Muted() }

func (m *Manager) playSample(op, id string, samples []Sample, opts []PlayOption) (*Instance, error) {
	if len(samples) == 0 {
		return nil, m.fail(op, id, ErrEmptySampleSet)
	}

	inst, err := m.prepare(op, id, m.playSettings(opts))
	if err != nil {
		return nil, err
	}

	sample := samples[m.choose(len(samples))]
	if err := inst.voice.Seek(sample.Start); err != nil {
		return nil, m.fail(op, id, fmt.Errorf("%w: %w", ErrPlaybackRejected, err))
	}

	m.start(op, inst)
	m.ctx.sched.AfterFunc(sample.Duration, inst.Stop)

	return inst, nil
}

// prepare resolves id to a fresh voice with its volume applied.
func (m *Manager) prepare(op, id string, p playSettings) (*Instance, error) {
	if m.ctx.Muted() {
		return nil, &Error{Op: op, SoundID: id, Err: ErrMuted}
	}

	clip, ok := m.ctx.clip(id)
	if !ok {
		location, known := m.registry[id]
		if !known {
			return nil, m.fail(op, id, ErrNotFound)
		}

		var err error
		clip, err = m.ctx.load(id, location)
		if err != nil {
			return nil, m.fail(op, id, fmt.Errorf("%w: %w", ErrNotFound, err))
		}
	}

	voice, err := clip.NewVoice()
	if err != nil {
		return nil, m.fail(op, id, fmt.Errorf("%w: %w", ErrPlaybackRejected, err))
	}

	volume := m.ctx.Volume()
	if p.hasVolume {
		volume = utils.ClampUnit(p.volume)
	}
	voice.SetVolume(volume)

	return newInstance(id, voice, m.ctx.report), nil
}

func (m *Manager) start(op string, inst *Instance) {
	m.ctx.sched.AfterFunc(0, func() {
		if err := inst.voice.Play(); err != nil {
			m.ctx.report(&Error{
				Op:      op,
				SoundID: inst.sound,
				Err:     fmt.Errorf("%w: %w", ErrPlaybackRejected, err),
			})
		}
	})
}

func (m *Manager) choose(n int) int {
	if n == 1 {
		return 0
	}

	i := m.pick(n)
	if i < 0 || i >= n {
		i = ((i % n) + n) % n
	}
	return i
}

func (m *Manager) playSettings(opts []PlayOption) playSettings {
	var p playSettings
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// fail reports err for id and returns it.
func (m *Manager) fail(op, id string, err error) error {
	e := &Error{Op: op, SoundID: id, Err: err}
	m.ctx.report(e)
	return e
}
