// SPDX-License-Identifier: EPL-2.0

package speaker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/ik5/sfx"
	"github.com/ik5/sfx/formats"
	"github.com/ik5/sfx/media"
	"github.com/ik5/sfx/utils"
)

const (
	DefaultSampleRate = 44100
	DefaultChannels   = 2
	DefaultBufferSize = 20 * time.Millisecond
)

// Options configures a Speaker. Zero values select the defaults.
type Options struct {
	SampleRate int
	Channels   int
	BufferSize time.Duration

	Loader media.Loader

	// Logger receives load results. Nil means slog.Default().
	Logger *slog.Logger

	// Reporter receives the starts that fail after Play has returned,
	// when a voice was waiting for a clip whose loading then failed.
	// Pass the sfx.Context's reporter to get them with the other playback
	// problems. Nil means an sfx.LogReporter on Logger.
	Reporter sfx.Reporter
}

// Speaker is an sfx.Backend playing on the default audio device through
// oto. Only one Speaker can exist per process, as oto allows a single
// context.
type Speaker struct {
	dev      device
	ready    <-chan struct{}
	rate     int
	channels int
	loader   media.Loader
	logger   *slog.Logger
	reporter sfx.Reporter

	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

var _ sfx.Backend = (*Speaker)(nil)

// New opens the audio device. It does not wait for the device to start;
// see Ready.
func New(opts Options) (*Speaker, error) {
	opts = opts.withDefaults()

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   opts.SampleRate,
		ChannelCount: opts.Channels,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   opts.BufferSize,
	})
	if err != nil {
		return nil, fmt.Errorf("opening audio device: %w", err)
	}

	return newSpeaker(otoDevice{ctx: ctx}, ready, opts), nil
}

func newSpeaker(dev device, ready <-chan struct{}, opts Options) *Speaker {
	opts = opts.withDefaults()

	ctx, cancel := context.WithCancel(context.Background())
	s := &Speaker{
		dev:      dev,
		ready:    ready,
		rate:     opts.SampleRate,
		channels: opts.Channels,
		loader:   opts.Loader,
		logger:   opts.Logger,
		reporter: opts.Reporter,
		ctx:      ctx,
		cancel:   cancel,
	}
	if s.loader.Formats == nil {
		s.loader.Formats = formats.NewRegistry()
	}

	return s
}

func (o Options) withDefaults() Options {
	if o.SampleRate <= 0 {
		o.SampleRate = DefaultSampleRate
	}
	if o.Channels <= 0 {
		o.Channels = DefaultChannels
	}
	if o.BufferSize <= 0 {
		o.BufferSize = DefaultBufferSize
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	if o.Reporter == nil {
		o.Reporter = sfx.LogReporter{Logger: o.Logger}
	}
	return o
}

// Ready is closed once the audio device has started.
func (s *Speaker) Ready() <-chan struct{} { return s.ready }

func (s *Speaker) SampleRate() int { return s.rate }

func (s *Speaker) Channels() int { return s.channels }

// Load starts fetching and decoding location in the background and
// returns a *Clip at once. An unknown extension fails immediately with
// ErrUnsupportedFormat.
func (s *Speaker) Load(id, location string) (sfx.Clip, error) {
	dec, err := s.loader.Decoder(location)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrClosed
	}

	c := newClip(s, id, location)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		buf, err := s.loader.DecodeWith(s.ctx, location, dec)
		if err == nil {
			buf, err = buf.Convert(s.rate, s.channels)
		}
		if err != nil {
			s.logger.Warn("sfx/speaker: load failed", "sound", id, "location", location, "err", err)
			c.finish(nil, err)
			return
		}

		s.logger.Debug("sfx/speaker: loaded", "sound", id, "duration", buf.Duration())
		c.finish(utils.AppendInt16LE(nil, buf.PCM16()), nil)
	}()

	return c, nil
}

// Close cancels loads in flight and waits for them to finish. Clips
// already loaded keep playing.
func (s *Speaker) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	s.cancel()
	s.wg.Wait()

	return nil
}

func (s *Speaker) isReady() bool {
	select {
	case <-s.ready:
		return true
	default:
		return false
	}
}

func (s *Speaker) frameSize() int {
	return s.channels * 2
}

func (s *Speaker) bytesToDuration(n int64) time.Duration {
	frames := n / int64(s.frameSize())
	return time.Duration(frames) * time.Second / time.Duration(s.rate)
}

func (s *Speaker) durationToBytes(d time.Duration) int64 {
	frames := int64(d) * int64(s.rate) / int64(time.Second)
	return frames * int64(s.frameSize())
}
