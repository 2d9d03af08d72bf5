// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ik5/sfx/formats/wav"
	"github.com/ik5/sfx/media"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		sample   int
		rate     int
		channels int
	)

	cmd := &cobra.Command{
		Use:   "render <id> <out.wav>",
		Short: "Decode a sound and write it as 16-bit WAV",
		Long: `render decodes a sound of the manifest, optionally cuts one of its
registered samples, converts it and writes a 16-bit PCM WAV file.
It does not use the audio device.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, out := args[0], args[1]

			m, err := a.manifest()
			if err != nil {
				return err
			}

			location, ok := m.Sounds[id]
			if !ok {
				return fmt.Errorf("unknown sound %q", id)
			}

			var loader media.Loader
			buf, err := loader.Decode(cmd.Context(), location)
			if err != nil {
				return err
			}

			if sample >= 0 {
				samples := m.Collections()[id]
				if sample >= len(samples) {
					return fmt.Errorf("sound %q has %d samples, no sample %d", id, len(samples), sample)
				}
				s := samples[sample]
				if buf, err = buf.Slice(s.Start, s.Duration); err != nil {
					return fmt.Errorf("cutting sample %d: %w", sample, err)
				}
			}

			if rate <= 0 {
				rate = buf.SampleRate
			}
			if channels <= 0 {
				channels = buf.Channels
			}
			if buf, err = buf.Convert(rate, channels); err != nil {
				return err
			}

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := wav.WriteWAV16(f, rate, channels, buf.PCM16()); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}

			a.logger.Debug("rendered", "sound", id, "frames", buf.Frames(), "rate", rate, "channels", channels)
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%v)\n", out, buf.Duration())
			return nil
		},
	}

	cmd.Flags().IntVar(&sample, "sample", -1, "index of the registered sample to cut")
	cmd.Flags().IntVar(&rate, "rate", 0, "output sample rate, default the source rate")
	cmd.Flags().IntVar(&channels, "channels", 0, "output channels, default the source channels")

	return cmd
}
