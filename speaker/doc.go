// SPDX-License-Identifier: EPL-2.0

/*
Package speaker is an sfx.Backend that plays sounds on the default audio
device with github.com/ebitengine/oto/v3.

Load picks a decoder by the location's extension, then fetches, decodes
and converts the sound to the device format on a goroutine. Locations
starting with http:// or https:// are downloaded; anything else is read
from Options.Loader.FS, or from the OS file system when FS is nil
(see the media package).

	spk, err := speaker.New(speaker.Options{})
	if err != nil {
		return err
	}
	defer spk.Close()

	ctx := sfx.NewContext(spk)
	mgr := sfx.New(ctx, sfx.Registry{"click": "click.wav"})

oto needs a moment to start the device. Voices started before Ready is
closed fail with ErrNotReady, which the sfx package reports as a
rejected playback. A voice started while its clip is still loading plays
once loading completes. If loading fails instead, the start is sent to
Options.Reporter as an sfx.ErrPlaybackRejected:

	spk, err := speaker.New(speaker.Options{Reporter: reporter})
	...
	ctx := sfx.NewContext(spk, sfx.WithReporter(reporter))
*/
package speaker
