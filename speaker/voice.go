// SPDX-License-Identifier: EPL-2.0

package speaker

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/ik5/sfx"
)

// voice plays a Clip through its own player. The player is created on
// the first start after the clip has loaded.
type voice struct {
	clip   *Clip
	reader *pcmReader

	mu      sync.Mutex
	player  player
	volume  float64
	pending bool
	waiting bool
}

var _ sfx.Voice = (*voice)(nil)

func newVoice(c *Clip) *voice {
	return &voice{
		clip:   c,
		reader: newPCMReader(c.s.frameSize()),
		volume: 1,
	}
}

// Play starts or resumes playback. While the clip is loading the voice
// is marked pending and starts when loading finishes, unless paused
// first.
func (v *voice) Play() error {
	if !v.clip.s.isReady() {
		return ErrNotReady
	}

	pcm, loaded, err := v.clip.state()
	if err != nil {
		return err
	}

	v.mu.Lock()
	if loaded {
		v.startLocked(pcm)
		v.mu.Unlock()
		return nil
	}

	v.pending = true
	register := !v.waiting
	v.waiting = true
	v.mu.Unlock()

	// whenLoaded may call v.loaded right away, so v.mu must be free
	if register {
		v.clip.whenLoaded(v.loaded)
	}
	return nil
}

// loaded runs once the clip has finished loading. A pending start whose
// clip failed is reported, since Play already returned nil for it.
func (v *voice) loaded() {
	pcm, _, err := v.clip.state()

	v.mu.Lock()
	pending := v.pending
	v.pending = false
	if pending && err == nil {
		v.startLocked(pcm)
	}
	v.mu.Unlock()

	if pending && err != nil {
		v.clip.s.reporter.Report(&sfx.Error{
			Op:      "start",
			SoundID: v.clip.id,
			Err:     fmt.Errorf("%w: %w", sfx.ErrPlaybackRejected, err),
		})
	}
}

func (v *voice) startLocked(pcm []byte) {
	v.pending = false

	if v.player == nil {
		v.reader.setData(pcm)
		v.player = v.clip.s.dev.NewPlayer(v.reader)
		v.player.SetVolume(v.volume)
	}
	v.player.Play()
}

func (v *voice) Pause() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.pending = false
	if v.player != nil {
		v.player.Pause()
	}
}

func (v *voice) Playing() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.pending {
		return true
	}
	return v.player != nil && v.player.IsPlaying()
}

func (v *voice) SetVolume(volume float64) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.volume = volume
	if v.player != nil {
		v.player.SetVolume(volume)
	}
}

func (v *voice) Volume() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.volume
}

func (v *voice) SetLoop(loop bool) { v.reader.setLoop(loop) }

func (v *voice) Loop() bool { return v.reader.looping() }

// Seek moves the cursor to pos. Before the clip has loaded the offset is
// kept and applied to the loaded data.
func (v *voice) Seek(pos time.Duration) error {
	if pos < 0 {
		return errNegativeOffset
	}
	off := v.clip.s.durationToBytes(pos)

	v.mu.Lock()
	defer v.mu.Unlock()

	if v.player != nil {
		// drops the samples the player has buffered
		_, err := v.player.Seek(off, io.SeekStart)
		return err
	}

	_, err := v.reader.Seek(off, io.SeekStart)
	return err
}

// Position is the cursor minus what the player has buffered but not
// played yet.
func (v *voice) Position() time.Duration {
	v.mu.Lock()
	defer v.mu.Unlock()

	pos := v.reader.offset()
	if v.player != nil {
		pos -= int64(v.player.BufferedSize())
		if pos < 0 {
			// wrapped around while looping
			pos += v.reader.size()
		}
	}
	return v.clip.s.bytesToDuration(max(pos, 0))
}
