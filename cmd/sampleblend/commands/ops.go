// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"github.com/spf13/cobra"

	"github.com/ik5/sampleblend/audio"
	"github.com/ik5/sampleblend/ops"
)

// op is a command that reads one file, transforms it and writes the result.
type op struct {
	use   string // cobra Use line, the input file first
	short string
	args  int  // positional arguments after the input file
	draws bool // consumes the seed

	run func(a *app, b audio.Buffer, args []string) (audio.Buffer, error)
}

var opTable = []op{
	{
		use: "cut FILE START DURATION", short: "Cut DURATION starting at START (seconds or n/d of the length)", args: 2,
		run: func(_ *app, b audio.Buffer, args []string) (audio.Buffer, error) {
			start, err := parseTime("start", args[0])
			if err != nil {
				return audio.Buffer{}, err
			}
			dur, err := parseTime("duration", args[1])
			if err != nil {
				return audio.Buffer{}, err
			}
			return ops.Cut(b, start, dur)
		},
	},
	{
		use: "pick FILE DURATION", short: "Cut DURATION from a random offset", args: 1, draws: true,
		run: func(a *app, b audio.Buffer, args []string) (audio.Buffer, error) {
			dur, err := parseTime("duration", args[0])
			if err != nil {
				return audio.Buffer{}, err
			}
			return ops.Pick(b, a.rng(), dur)
		},
	},
	{
		use: "speed FILE FACTOR", short: "Play FACTOR times faster, changing pitch", args: 1,
		run: func(_ *app, b audio.Buffer, args []string) (audio.Buffer, error) {
			factor, err := parseFloat("factor", args[0])
			if err != nil {
				return audio.Buffer{}, err
			}
			return ops.Speed(b, factor)
		},
	},
	{
		use: "resize FILE SECONDS", short: "Stretch to last SECONDS", args: 1,
		run: func(_ *app, b audio.Buffer, args []string) (audio.Buffer, error) {
			secs, err := parseFloat("seconds", args[0])
			if err != nil {
				return audio.Buffer{}, err
			}
			return ops.Resize(b, secs)
		},
	},
	{
		use: "gain FILE DB", short: "Change the level by DB decibels", args: 1,
		run: func(_ *app, b audio.Buffer, args []string) (audio.Buffer, error) {
			db, err := parseFloat("db", args[0])
			if err != nil {
				return audio.Buffer{}, err
			}
			return ops.Gain(b, db), nil
		},
	},
	{
		use: "fade FILE START_DB END_DB", short: "Ramp the level from START_DB to END_DB", args: 2,
		run: func(_ *app, b audio.Buffer, args []string) (audio.Buffer, error) {
			from, err := parseFloat("start db", args[0])
			if err != nil {
				return audio.Buffer{}, err
			}
			to, err := parseFloat("end db", args[1])
			if err != nil {
				return audio.Buffer{}, err
			}
			return ops.Fade(b, from, to), nil
		},
	},
	{
		use: "maxgain FILE", short: "Normalize quiet audio to a peak of 1",
		run: func(_ *app, b audio.Buffer, _ []string) (audio.Buffer, error) {
			return ops.MaxGain(b), nil
		},
	},
	{
		use: "repeat FILE N", short: "Loop N times", args: 1,
		run: func(_ *app, b audio.Buffer, args []string) (audio.Buffer, error) {
			n, err := parseInt("n", args[0])
			if err != nil {
				return audio.Buffer{}, err
			}
			return ops.Repeat(b, n)
		},
	},
	{
		use: "chop FILE N", short: "Repeat the first 1/N of the file N times", args: 1,
		run: func(_ *app, b audio.Buffer, args []string) (audio.Buffer, error) {
			n, err := parseInt("n", args[0])
			if err != nil {
				return audio.Buffer{}, err
			}
			return ops.Chop(b, n)
		},
	},
	{
		use: "reverse FILE", short: "Play backwards",
		run: func(_ *app, b audio.Buffer, _ []string) (audio.Buffer, error) {
			return ops.Reverse(b), nil
		},
	},
	{
		use: "remix FILE PATTERN", short: "Rearrange equal segments by a digit PATTERN such as 1213", args: 1,
		run: func(_ *app, b audio.Buffer, args []string) (audio.Buffer, error) {
			return ops.Remix(b, args[0])
		},
	},
	{
		use: "mosaic FILE PATTERN SEGMENT", short: "Lay out random SEGMENT second picks by PATTERN (a-z, _ for silence)", args: 2, draws: true,
		run: func(a *app, b audio.Buffer, args []string) (audio.Buffer, error) {
			segment, err := parseFloat("segment", args[1])
			if err != nil {
				return audio.Buffer{}, err
			}
			return ops.Mosaic(b, a.rng(), args[0], segment, nil)
		},
	},
}

func newOpCmds(a *app) []*cobra.Command {
	cmds := make([]*cobra.Command, 0, len(opTable)+2)
	for _, o := range opTable {
		cmds = append(cmds, &cobra.Command{
			Use:   o.use,
			Short: o.short,
			Args:  cobra.ExactArgs(o.args + 1),
			RunE: func(cmd *cobra.Command, args []string) error {
				b, err := loadAll(args[:1])
				if err != nil {
					return err
				}
				out, err := o.run(a, b[0], args[1:])
				if err != nil {
					return err
				}
				if o.draws {
					a.logSeed(cmd)
				}
				return a.write(cmd, out)
			},
		})
	}
	return append(cmds, newAddCmd(a), newMixCmd(a))
}

func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add FILE FILE...",
		Short: "Concatenate files",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			bs, err := loadAll(args)
			if err != nil {
				return err
			}
			out, err := ops.Join(bs)
			if err != nil {
				return err
			}
			return a.write(cmd, out)
		},
	}
}

func newMixCmd(a *app) *cobra.Command {
	var normalize bool

	cmd := &cobra.Command{
		Use:   "mix FILE FILE",
		Short: "Overlay two files",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			bs, err := loadAll(args)
			if err != nil {
				return err
			}
			out, err := ops.Mix(bs[0], bs[1], normalize)
			if err != nil {
				return err
			}
			return a.write(cmd, out)
		},
	}
	cmd.Flags().BoolVarP(&normalize, "normalize", "n", false, "scale the mix to a peak of 1")
	return cmd
}
