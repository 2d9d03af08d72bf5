// SPDX-License-Identifier: EPL-2.0

/*
Package sfx plays short sound effects.

A Manager maps sound identifiers to source locations through a Registry
and plays them through a Backend. Loaded clips, the global volume and the
mute flag live in a Context, which several managers may share:

	ctx := sfx.NewContext(backend)
	defer ctx.Close()

	mgr := sfx.New(ctx, sfx.Registry{
		"click": "sounds/click.wav",
		"coin":  "sounds/coin.ogg",
	}, sfx.WithVolume(0.5))

	_ = mgr.Preload("click")

	inst, err := mgr.Play("click")
	if err != nil {
		// muted, unknown sound or backend failure
	}
	defer sfx.Stop(inst)

# Deferred playback

Play returns an Instance before any sound is made. Starting the voice is
scheduled with zero delay on the context's Scheduler (an EventLoop unless
WithScheduler says otherwise), so a backend refusal to start is sent to
the Reporter instead of the caller.

# Samples

A Sample is a sub-range of a sound. PlaySample picks one sample at random,
seeks the new voice to its start and schedules a stop Duration after the
start was scheduled. The sounding time is therefore slightly shorter than
Duration when the scheduler is busy.

	mgr.RegisterSampleCollection("coin", []sfx.Sample{
		sfx.SampleAt(0, 0.2),
		sfx.SampleAt(0.5, 0.2),
	})
	inst, _ := mgr.PlayRegisteredSample("coin")

# Errors

Unknown sounds, missing collections, empty sample sets and playback
refusals are reported once to the Reporter and returned wrapped in
*Error. Muted play calls return ErrMuted and are not reported.

The speaker package provides a Backend that decodes files and plays them
on the default audio device.
*/
package sfx
