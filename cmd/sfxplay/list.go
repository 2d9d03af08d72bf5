// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the sounds of the manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.manifest()
			if err != nil {
				return err
			}

			ids := slices.Sorted(maps.Keys(m.Sounds))
			width := 0
			for _, id := range ids {
				width = max(width, len(id))
			}

			out := cmd.OutOrStdout()
			for _, id := range ids {
				fmt.Fprintf(out, "%-*s  %s", width, id, m.Sounds[id])
				if n := len(m.Samples[id]); n > 0 {
					fmt.Fprintf(out, "  (%d samples)", n)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
}
