// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"github.com/spf13/cobra"

	"github.com/ik5/sampleblend/audio"
	"github.com/ik5/sampleblend/ops"
)

func newConvertCmd(a *app) *cobra.Command {
	var rate, channels int

	cmd := &cobra.Command{
		Use:   "convert FILE",
		Short: "Change sample rate, channel count, bit depth or file format",
		Long: `Decode FILE (wav, aiff, mp3 or ogg) and write it again, optionally at
another sample rate or channel count. The output format follows the
extension given with -o.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bs, err := loadAll(args)
			if err != nil {
				return err
			}
			b := bs[0]

			target := b.Format
			if rate > 0 {
				target.SampleRate = rate
			}
			if channels > 0 {
				target.Channels = channels
			}

			out, err := audio.Conform(b, target)
			if err != nil {
				return err
			}
			return a.write(cmd, out)
		},
	}
	cmd.Flags().IntVarP(&rate, "rate", "r", 0, "output sample rate in Hz")
	cmd.Flags().IntVar(&channels, "channels", 0, "output channel count")
	return cmd
}

func newSplitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "split FILE N",
		Short: "Cut into N equal segments written as OUTPUT-1 ... OUTPUT-N",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.output == "" || a.output == "-" {
				return errOutputRequired
			}

			n, err := parseInt("n", args[1])
			if err != nil {
				return err
			}
			bs, err := loadAll(args[:1])
			if err != nil {
				return err
			}

			segments, err := ops.Split(bs[0], n)
			if err != nil {
				return err
			}
			for i, seg := range segments {
				if err := a.save(numbered(a.output, i+1), seg); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
