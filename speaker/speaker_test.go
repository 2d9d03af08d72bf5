// SPDX-License-Identifier: EPL-2.0

package speaker

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"sync"
	"testing"
	"testing/fstest"
	"time"

	"github.com/ik5/sfx"
	"github.com/ik5/sfx/formats/wav"
	"github.com/ik5/sfx/internal/audiotest"
	"github.com/ik5/sfx/media"
)

type fakePlayer struct {
	mu      sync.Mutex
	src     io.Reader
	playing bool
	volume  float64
	plays   int
}

func (p *fakePlayer) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playing = true
	p.plays++
}

func (p *fakePlayer) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playing = false
}

func (p *fakePlayer) IsPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

func (p *fakePlayer) SetVolume(v float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.volume = v
}

func (p *fakePlayer) Seek(offset int64, whence int) (int64, error) {
	return p.src.(io.Seeker).Seek(offset, whence)
}

func (p *fakePlayer) BufferedSize() int { return 0 }
func (p *fakePlayer) Err() error        { return nil }

type fakeDevice struct {
	mu      sync.Mutex
	players []*fakePlayer
}

func (d *fakeDevice) NewPlayer(r io.Reader) player {
	d.mu.Lock()
	defer d.mu.Unlock()

	p := &fakePlayer{src: r}
	d.players = append(d.players, p)
	return p
}

func (d *fakeDevice) count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.players)
}

func closedChan() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}

// wavBytes encodes frames frames of a constant value as 16-bit WAV.
func wavBytes(t *testing.T, rate, channels, frames int, value int16) []byte {
	t.Helper()

	samples := make([]int16, frames*channels)
	for i := range samples {
		samples[i] = value
	}

	var out bytes.Buffer
	if err := wav.WriteWAV16(&out, rate, channels, samples); err != nil {
		t.Fatal(err)
	}
	return out.Bytes()
}

func newTestSpeaker(t *testing.T, fsys fs.FS) (*Speaker, *fakeDevice) {
	t.Helper()

	dev := &fakeDevice{}
	s := newSpeaker(dev, closedChan(), Options{
		SampleRate: 8000,
		Channels:   2,
		Loader:     media.Loader{FS: fsys},
		Reporter:   sfx.Discard,
	})
	t.Cleanup(func() { _ = s.Close() })

	return s, dev
}

func waitLoaded(t *testing.T, c *Clip) {
	t.Helper()

	select {
	case <-c.Ready():
	case <-time.After(5 * time.Second):
		t.Fatal("clip never finished loading")
	}
}

func TestSpeaker_Load(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"sounds/click.wav": {Data: wavBytes(t, 8000, 1, 4000, 16384)},
	}
	s, dev := newTestSpeaker(t, fsys)

	got, err := s.Load("click", "sounds/click.wav")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	c := got.(*Clip)
	waitLoaded(t, c)

	if err := c.Err(); err != nil {
		t.Fatalf("clip error = %v", err)
	}
	if d := c.Duration(); d != 500*time.Millisecond {
		t.Errorf("Duration() = %v, want 500ms", d)
	}
	if c.ID() != "click" || c.Location() != "sounds/click.wav" {
		t.Errorf("clip = %q at %q", c.ID(), c.Location())
	}

	v, err := c.NewVoice()
	if err != nil {
		t.Fatal(err)
	}
	v.SetVolume(0.5)
	if err := v.Play(); err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	if !v.Playing() {
		t.Error("Playing() = false after Play")
	}
	if dev.count() != 1 {
		t.Fatalf("players = %d, want 1", dev.count())
	}

	p := dev.players[0]
	if p.volume != 0.5 {
		t.Errorf("player volume = %v, want 0.5", p.volume)
	}

	// mono upmixed to stereo 16-bit: 4 bytes per frame
	data, err := io.ReadAll(p.src)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 4000*4 {
		t.Fatalf("pcm bytes = %d, want %d", len(data), 4000*4)
	}
	if l, r := int16(uint16(data[0])|uint16(data[1])<<8), int16(uint16(data[2])|uint16(data[3])<<8); l != r || l < 16000 {
		t.Errorf("first frame = %d/%d, want equal channels near 16384", l, r)
	}
}

func TestSpeaker_LoadUnsupported(t *testing.T) {
	t.Parallel()

	s, _ := newTestSpeaker(t, fstest.MapFS{})

	if _, err := s.Load("x", "x.flac"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Load(x.flac) error = %v, want ErrUnsupportedFormat", err)
	}
	if _, err := s.Load("x", "noext"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Load(noext) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestSpeaker_LoadMissing(t *testing.T) {
	t.Parallel()

	s, dev := newTestSpeaker(t, fstest.MapFS{})

	got, err := s.Load("gone", "gone.wav")
	if err != nil {
		t.Fatalf("Load() error = %v, want the failure to come later", err)
	}
	c := got.(*Clip)
	waitLoaded(t, c)

	if !errors.Is(c.Err(), fs.ErrNotExist) {
		t.Errorf("clip error = %v, want fs.ErrNotExist", c.Err())
	}

	v, _ := c.NewVoice()
	if err := v.Play(); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Play() error = %v, want the load error", err)
	}
	if dev.count() != 0 {
		t.Error("failed clip created a player")
	}
}

func TestSpeaker_NotReady(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{"a.wav": {Data: wavBytes(t, 8000, 2, 100, 0)}}
	s := newSpeaker(&fakeDevice{}, make(chan struct{}), Options{Loader: media.Loader{FS: fsys}})
	defer s.Close()

	got, err := s.Load("a", "a.wav")
	if err != nil {
		t.Fatal(err)
	}
	v, _ := got.NewVoice()
	if err := v.Play(); !errors.Is(err, ErrNotReady) {
		t.Errorf("Play() error = %v, want ErrNotReady", err)
	}
}

func TestSpeaker_Closed(t *testing.T) {
	t.Parallel()

	s, _ := newTestSpeaker(t, fstest.MapFS{})
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Load("a", "a.wav"); !errors.Is(err, ErrClosed) {
		t.Errorf("Load after Close error = %v, want ErrClosed", err)
	}
}

// gatedFS blocks Open until release is closed.
type gatedFS struct {
	fs      fs.FS
	release chan struct{}
}

func (g gatedFS) Open(name string) (fs.File, error) {
	<-g.release
	return g.fs.Open(name)
}

func TestVoice_PendingStart(t *testing.T) {
	t.Parallel()

	gate := gatedFS{
		fs:      fstest.MapFS{"a.wav": {Data: wavBytes(t, 8000, 2, 8000, 100)}},
		release: make(chan struct{}),
	}
	s, dev := newTestSpeaker(t, gate)

	got, err := s.Load("a", "a.wav")
	if err != nil {
		t.Fatal(err)
	}
	c := got.(*Clip)

	started, _ := c.NewVoice()
	paused, _ := c.NewVoice()

	if err := started.Seek(250 * time.Millisecond); err != nil {
		t.Fatalf("Seek() while loading error = %v", err)
	}
	if err := started.Play(); err != nil {
		t.Fatalf("Play() while loading error = %v", err)
	}
	if err := paused.Play(); err != nil {
		t.Fatal(err)
	}
	paused.Pause()

	if !started.Playing() {
		t.Error("pending voice does not report playing")
	}
	if dev.count() != 0 {
		t.Fatal("player created before the clip loaded")
	}

	close(gate.release)
	waitLoaded(t, c)

	if dev.count() != 1 {
		t.Fatalf("players = %d, want 1 (the paused voice must not start)", dev.count())
	}
	if !started.Playing() {
		t.Error("pending voice did not start")
	}
	if paused.Playing() {
		t.Error("paused voice started")
	}
	if got := started.Position(); got != 250*time.Millisecond {
		t.Errorf("Position() = %v, want 250ms", got)
	}
}

func TestVoice_StopAndLoop(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{"a.wav": {Data: wavBytes(t, 8000, 2, 800, 100)}}
	s, _ := newTestSpeaker(t, fsys)

	got, _ := s.Load("a", "a.wav")
	waitLoaded(t, got.(*Clip))

	v, _ := got.NewVoice()
	v.SetLoop(true)
	if !v.Loop() {
		t.Error("Loop() = false after SetLoop(true)")
	}

	if err := v.Play(); err != nil {
		t.Fatal(err)
	}
	if err := v.Seek(50 * time.Millisecond); err != nil {
		t.Fatal(err)
	}
	if got := v.Position(); got != 50*time.Millisecond {
		t.Errorf("Position() = %v, want 50ms", got)
	}

	v.Pause()
	if err := v.Seek(0); err != nil {
		t.Fatal(err)
	}
	if v.Playing() || v.Position() != 0 {
		t.Errorf("after stop playing=%v pos=%v", v.Playing(), v.Position())
	}

	if err := v.Seek(-time.Second); err == nil {
		t.Error("Seek(-1s) succeeded")
	}
}

func TestVoice_PendingStartLoadFailure(t *testing.T) {
	t.Parallel()

	gate := gatedFS{fs: fstest.MapFS{}, release: make(chan struct{})}
	recorder := &audiotest.Recorder{}
	dev := &fakeDevice{}
	s := newSpeaker(dev, closedChan(), Options{
		Loader:   media.Loader{FS: gate},
		Reporter: recorder,
	})
	defer s.Close()

	got, err := s.Load("gone", "gone.wav")
	if err != nil {
		t.Fatal(err)
	}
	c := got.(*Clip)

	pending, _ := c.NewVoice()
	paused, _ := c.NewVoice()

	if err := pending.Play(); err != nil {
		t.Fatalf("Play() while loading error = %v", err)
	}
	if err := paused.Play(); err != nil {
		t.Fatal(err)
	}
	paused.Pause()

	close(gate.release)
	waitLoaded(t, c)

	errs := recorder.Errors()
	if len(errs) != 1 {
		t.Fatalf("reports = %d, want 1: %v", len(errs), errs)
	}
	if !errors.Is(errs[0], sfx.ErrPlaybackRejected) || !errors.Is(errs[0], fs.ErrNotExist) {
		t.Errorf("report = %v, want ErrPlaybackRejected wrapping fs.ErrNotExist", errs[0])
	}

	var e *sfx.Error
	if !errors.As(errs[0], &e) || e.SoundID != "gone" {
		t.Errorf("report = %#v, want *sfx.Error for \"gone\"", errs[0])
	}

	if pending.Playing() {
		t.Error("failed voice reports playing")
	}
	if dev.count() != 0 {
		t.Error("failed clip created a player")
	}
}
