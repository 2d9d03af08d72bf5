// SPDX-License-Identifier: EPL-2.0

//go:build nodevice

package main

import (
	"errors"

	"github.com/spf13/cobra"
)

func newPlayCmd(*app) *cobra.Command {
	return &cobra.Command{
		Use:   "play <id>",
		Short: "Play a sound (unavailable: built with the nodevice tag)",
		Args:  cobra.ExactArgs(1),
		RunE: func(*cobra.Command, []string) error {
			return errors.New("sfxplay was built without audio device support")
		},
	}
}
