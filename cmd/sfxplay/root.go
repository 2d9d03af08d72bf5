// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ik5/sfx"
)

// app carries the settings shared by every subcommand.
type app struct {
	v      *viper.Viper
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "sfxplay",
		Short: "Play and render sound effects from a manifest",
		Long: `sfxplay reads a YAML sound manifest and lists, plays or renders its sounds.

Flags can also be set through the environment: SFX_MANIFEST, SFX_VOLUME
and SFX_VERBOSE.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if a.v.GetBool("verbose") {
				level = slog.LevelDebug
			}
			a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringP("manifest", "m", "sounds.yaml", "sound manifest file")
	flags.Float64("volume", sfx.DefaultVolume, "global volume in [0, 1], overrides the manifest")
	flags.BoolP("verbose", "v", false, "log debug messages")

	a.v.SetEnvPrefix("SFX")
	a.v.AutomaticEnv()
	for _, name := range []string{"manifest", "volume", "verbose"} {
		// only fails for a nil flag
		_ = a.v.BindPFlag(name, flags.Lookup(name))
	}

	root.AddCommand(
		newListCmd(a),
		newPlayCmd(a),
		newRenderCmd(a),
	)

	return root
}

func (a *app) manifest() (*sfx.Manifest, error) {
	path := a.v.GetString("manifest")
	m, err := sfx.ReadManifestFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading manifest: %w", err)
	}
	return m, nil
}

// managerOptions applies --volume or SFX_VOLUME when given.
func (a *app) managerOptions() []sfx.Option {
	if !a.v.IsSet("volume") {
		return nil
	}
	return []sfx.Option{sfx.WithVolume(a.v.GetFloat64("volume"))}
}
