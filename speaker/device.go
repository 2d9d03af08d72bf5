// SPDX-License-Identifier: EPL-2.0

package speaker

import (
	"io"

	"github.com/ebitengine/oto/v3"
)

// device creates players. *oto.Context is wrapped by otoDevice.
type device interface {
	NewPlayer(r io.Reader) player
}

// player is the part of *oto.Player a voice uses.
type player interface {
	Play()
	Pause()
	IsPlaying() bool
	SetVolume(volume float64)
	Seek(offset int64, whence int) (int64, error)
	BufferedSize() int
	Err() error
}

type otoDevice struct {
	ctx *oto.Context
}

func (d otoDevice) NewPlayer(r io.Reader) player {
	return d.ctx.NewPlayer(r)
}
