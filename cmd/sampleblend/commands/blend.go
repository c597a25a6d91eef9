// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ik5/sampleblend"
	"github.com/ik5/sampleblend/audio"
	"github.com/ik5/sampleblend/blend"
	"github.com/ik5/sampleblend/cache"
	"github.com/ik5/sampleblend/config"
)

func newBlendCmd(a *app) *cobra.Command {
	var (
		noCache bool
		over    config.Config
	)

	cmd := &cobra.Command{
		Use:   "blend [PATH...]",
		Short: "Compose a new piece from samples with a generative blender",
		Long: `Blend the given files into one composition. A directory stands for as many
randomly drawn files as the largest blender needs. Without arguments the
inputs listed in the config file are used.

Inputs are converted to the format of the first one, or to the rate and
channels set in the config file. With cache_dir set, renders are kept in a
database and repeated runs with the same seed return immediately.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			flags := cmd.Flags()
			if flags.Changed("blender") {
				cfg.Blender = over.Blender
			}
			if flags.Changed("post-fx") {
				cfg.PostFX = over.PostFX
			}
			if flags.Changed("fx-chance") {
				cfg.FXChance = over.FXChance
			}
			if flags.Changed("cache-dir") {
				cfg.CacheDir = over.CacheDir
			}
			if flags.Changed("rate") {
				cfg.SampleRate = over.SampleRate
			}
			if flags.Changed("channels") {
				cfg.Channels = over.Channels
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			paths := args
			if len(paths) == 0 {
				paths = cfg.Inputs
			}
			if len(paths) == 0 {
				return errors.New("no inputs: pass files or directories, or set inputs in the config file")
			}

			inputs, err := sampleblend.LoadPaths(paths, blend.Default().MaxArity(), a.rng())
			if err != nil {
				return err
			}
			inputs, err = sampleblend.ConformAll(inputs, audio.Format{
				Channels:   cfg.Channels,
				SampleRate: cfg.SampleRate,
			})
			if err != nil {
				return err
			}

			var store cache.Store
			if cfg.CacheDir != "" && !noCache {
				db, err := cache.OpenBadger(cache.BadgerOptions{Dir: cfg.CacheDir})
				if err != nil {
					return err
				}
				defer db.Close()
				store = db
			}

			out, err := sampleblend.Render(context.Background(), store, inputs, a.seed, cfg.Blender, cfg.Options())
			if err != nil {
				return fmt.Errorf("blend %s: %w", cfg.Blender, err)
			}

			slog.Info("blend: rendered", "seed", a.seed, "blender", cfg.Blender, "duration", out.Duration())
			return a.write(cmd, out)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&over.Blender, "blender", "b", blend.Random, "blender name or \"rand\"")
	f.StringVar(&over.PostFX, "post-fx", "", "effect applied after blending, or \"rand\"")
	f.Float64Var(&over.FXChance, "fx-chance", 0.3, "chance of a random effect when --post-fx is empty")
	f.StringVar(&over.CacheDir, "cache-dir", "", "render cache directory")
	f.IntVar(&over.SampleRate, "rate", 0, "sample rate inputs are converted to")
	f.IntVar(&over.Channels, "channels", 0, "channel count inputs are converted to")
	f.BoolVar(&noCache, "no-cache", false, "ignore cache_dir")
	return cmd
}

func newBlendersCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "blenders",
		Short: "List the available blenders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range blend.Default().Names() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
