// SPDX-License-Identifier: EPL-2.0

package sfx

import (
	"time"

	"github.com/google/uuid"

	"github.com/ik5/sfx/utils"
)

// Instance is one playback of a sound. Every successful play call returns
// a new Instance wrapping its own Voice; the manager keeps no reference to
// it afterwards.
//
// All methods are safe on a nil *Instance.
type Instance struct {
	id     uuid.UUID
	sound  string
	voice  Voice
	report func(error)
}

func newInstance(sound string, voice Voice, report func(error)) *Instance {
	return &Instance{
		id:     uuid.New(),
		sound:  sound,
		voice:  voice,
		report: report,
	}
}

func (i *Instance) ID() uuid.UUID {
	if i == nil {
		return uuid.Nil
	}
	return i.id
}

// SoundID is the registry identifier the instance was created for.
func (i *Instance) SoundID() string {
	if i == nil {
		return ""
	}
	return i.sound
}

func (i *Instance) Pause() {
	if i == nil {
		return
	}
	i.voice.Pause()
}

// Resume continues playback from the current position.
func (i *Instance) Resume() error {
	if i == nil {
		return nil
	}
	return i.voice.Play()
}

// Stop pauses playback and rewinds to the beginning. Stopping twice is the
// same as stopping once. A failed rewind is sent to the Reporter of the
// context that created the instance.
func (i *Instance) Stop() {
	if i == nil {
		return
	}
	i.voice.Pause()
	if err := i.voice.Seek(0); err != nil && i.report != nil {
		i.report(&Error{Op: "stop", SoundID: i.sound, Err: err})
	}
}

func (i *Instance) Seek(pos time.Duration) error {
	if i == nil {
		return nil
	}
	return i.voice.Seek(pos)
}

func (i *Instance) Position() time.Duration {
	if i == nil {
		return 0
	}
	return i.voice.Position()
}

// SetVolume sets this instance's volume, clamped to [0, 1].
func (i *Instance) SetVolume(v float64) {
	if i == nil {
		return
	}
	i.voice.SetVolume(utils.ClampUnit(v))
}

func (i *Instance) Volume() float64 {
	if i == nil {
		return 0
	}
	return i.voice.Volume()
}

func (i *Instance) SetLoop(loop bool) {
	if i == nil {
		return
	}
	i.voice.SetLoop(loop)
}

func (i *Instance) Looping() bool {
	if i == nil {
		return false
	}
	return i.voice.Loop()
}

func (i *Instance) Playing() bool {
	if i == nil {
		return false
	}
	return i.voice.Playing()
}

// Stop stops inst. A nil inst is ignored.
func Stop(inst *Instance) {
	inst.Stop()
}
