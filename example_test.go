// SPDX-License-Identifier: EPL-2.0

package sfx_test

import (
	"errors"
	"fmt"
	"time"

	"github.com/ik5/sfx"
	"github.com/ik5/sfx/internal/audiotest"
)

func Example() {
	sched := audiotest.NewScheduler()
	ctx := sfx.NewContext(audiotest.NewBackend(), sfx.WithScheduler(sched), sfx.WithReporter(sfx.Discard))
	defer ctx.Close()

	mgr := sfx.New(ctx, sfx.Registry{"a": "a.mp3"})
	if err := mgr.Preload("a"); err != nil {
		fmt.Println(err)
		return
	}

	inst, err := mgr.Play("a", sfx.PlayVolume(0.3))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("playing before start:", inst.Playing())

	sched.RunPending()
	fmt.Println("playing:", inst.Playing(), "volume:", inst.Volume())

	sfx.Stop(inst)
	fmt.Println("playing after stop:", inst.Playing())

	// Output:
	// playing before start: false
	// playing: true volume: 0.3
	// playing after stop: false
}

func ExampleManager_PlayRegisteredSample() {
	sched := audiotest.NewScheduler()
	ctx := sfx.NewContext(audiotest.NewBackend(), sfx.WithScheduler(sched), sfx.WithReporter(sfx.Discard))
	defer ctx.Close()

	mgr := sfx.New(ctx, sfx.Registry{"coin": "coin.ogg"})
	mgr.RegisterSampleCollection("coin", []sfx.Sample{sfx.SampleAt(2, 0.5)})

	inst, _ := mgr.PlayRegisteredSample("coin")
	fmt.Println("start:", inst.Position())

	sched.RunPending()
	fmt.Println("playing:", inst.Playing())

	sched.Advance(500 * time.Millisecond)
	fmt.Println("playing:", inst.Playing(), "position:", inst.Position())

	// Output:
	// start: 2s
	// playing: true
	// playing: false position: 0s
}

func ExampleManager_SetMuted() {
	ctx := sfx.NewContext(audiotest.NewBackend(), sfx.WithScheduler(audiotest.NewScheduler()), sfx.WithReporter(sfx.Discard))
	defer ctx.Close()

	mgr := sfx.New(ctx, sfx.Registry{"a": "a.mp3"})
	mgr.SetMuted(true)

	_, err := mgr.Play("a")
	fmt.Println(errors.Is(err, sfx.ErrMuted))

	mgr.SetMuted(false)
	_, err = mgr.Play("missing")
	fmt.Println(errors.Is(err, sfx.ErrMuted), errors.Is(err, sfx.ErrNotFound))

	// Output:
	// true
	// false true
}
