package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rookflow/problem"
)

// genCommand creates the gen command, which prints a random problem.
func (c *CLI) genCommand() *cobra.Command {
	var (
		side, count int
		seed        int64
		asTOML      bool
	)
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a random rook problem",
		Example: `  rookflow gen --side 400 --count 15 --seed 1 | rookflow solve
  rookflow gen --side 8 --count 3 --toml > small.toml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if side <= 0 {
				return fmt.Errorf("%w: got %d", problem.ErrInvalidSide, side)
			}
			if count < 0 {
				return fmt.Errorf("gen: count must not be negative, got %d", count)
			}
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}
			c.Logger.Debug("generating", "side", side, "count", count, "seed", seed)

			p := problem.Random(rand.New(rand.NewSource(seed)), side, count)
			if asTOML {
				return problem.EncodeTOML(cmd.OutOrStdout(), p)
			}
			return problem.Format(cmd.OutOrStdout(), p)
		},
	}
	cmd.Flags().IntVar(&side, "side", 10, "grid side length")
	cmd.Flags().IntVar(&count, "count", 5, "number of rectangles")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (default: time-based)")
	cmd.Flags().BoolVar(&asTOML, "toml", false, "emit TOML instead of a token stream")
	return cmd
}
