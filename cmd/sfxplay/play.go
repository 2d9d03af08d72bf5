// SPDX-License-Identifier: EPL-2.0

//go:build !nodevice

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ik5/sfx"
	"github.com/ik5/sfx/speaker"
)

// readyTimeout bounds the wait for the audio device to start.
const readyTimeout = 5 * time.Second

func newPlayCmd(a *app) *cobra.Command {
	var (
		sample bool
		loop   bool
		wait   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "play <id>",
		Short: "Play a sound on the default audio device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			m, err := a.manifest()
			if err != nil {
				return err
			}

			reporter := newFailureReporter(sfx.LogReporter{Logger: a.logger})

			spk, err := speaker.New(speaker.Options{Logger: a.logger, Reporter: reporter})
			if err != nil {
				return err
			}
			defer spk.Close()

			ctx := sfx.NewContext(spk, sfx.WithReporter(reporter))
			defer ctx.Close()

			mgr := m.Apply(ctx, a.managerOptions()...)
			if err := mgr.Preload(id); err != nil {
				return err
			}

			select {
			case <-spk.Ready():
			case <-time.After(readyTimeout):
				return speaker.ErrNotReady
			case <-cmd.Context().Done():
				return cmd.Context().Err()
			}

			var inst *sfx.Instance
			if sample {
				inst, err = mgr.PlayRegisteredSample(id)
			} else {
				var opts []sfx.PlayOption
				if loop {
					opts = append(opts, sfx.PlayLooped())
				}
				inst, err = mgr.Play(id, opts...)
			}
			if err != nil {
				return err
			}
			defer sfx.Stop(inst)

			a.logger.Info("playing", "sound", id, "instance", inst.ID(), "volume", inst.Volume())

			select {
			case <-time.After(wait):
			case <-cmd.Context().Done():
			case err := <-reporter.failed:
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "played %s\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVar(&sample, "sample", false, "play a random registered sample")
	cmd.Flags().BoolVar(&loop, "loop", false, "loop the sound until --wait elapses")
	cmd.Flags().DurationVar(&wait, "wait", 2*time.Second, "how long to keep playing")

	return cmd
}
