// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ik5/sampleblend/fx"
)

func newFXCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fx FILE EFFECT",
		Short: "Apply an effect with seeded random parameters",
		Long: fmt.Sprintf(`Apply EFFECT to FILE. Parameters such as cutoff or delay are drawn from
the seed. EFFECT is one of %s, or %q for a random one.`,
			strings.Join(fx.Names(), ", "), fx.Random),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			bs, err := loadAll(args[:1])
			if err != nil {
				return err
			}
			out, err := fx.Apply(bs[0], a.rng(), args[1])
			if err != nil {
				return err
			}
			a.logSeed(cmd)
			return a.write(cmd, out)
		},
	}
}
