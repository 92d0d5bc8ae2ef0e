package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rookflow/flow"
)

// solveCommand creates the solve command.
//
// Output on stdout is two lines, the maximum flow and the elapsed
// construction+solve time in milliseconds, followed by one line per rook
// when placements are requested.
func (c *CLI) solveCommand() *cobra.Command {
	var (
		file       string
		placements bool
	)
	cmd := &cobra.Command{
		Use:   "solve [tokens...]",
		Short: "Compute the maximum flow of a rook problem",
		Long: `Solve reads "side count r0 c0 r1 c1 ..." from the arguments, a file (-f), or stdin,
and prints the maximum number of non-attacking rooks followed by the elapsed milliseconds.`,
		Example: `  rookflow solve 4 2 0 0 1 1 2 2 3 3
  rookflow solve -f problem.toml --placements`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := readProblem(c.Logger, cmd.InOrStdin(), file, args)
			if err != nil {
				return err
			}

			prog := newProgress(c.Logger)
			start := time.Now()
			n, err := flow.NewNetwork(p,
				flow.WithLogger(c.Logger),
				flow.WithChunkSize(c.Config.Solver.QueueChunk),
			)
			if err != nil {
				return err
			}
			c.Logger.Debug("network built", "vertices", n.Layout().Len(), "edges", n.EdgeCount())
			res, err := n.Solve(cmd.Context())
			if err != nil {
				return err
			}
			elapsed := time.Since(start)
			prog.done(fmt.Sprintf("Solved in %d phases, %d augmenting paths", res.Phases, res.Augmentations))

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, res.Flow)
			fmt.Fprintf(out, "%.3f\n", float64(elapsed.Microseconds())/1000)
			if placements || c.Config.Solver.ShowPlacements {
				for _, pl := range n.Placements() {
					fmt.Fprintf(out, "%d %d %d\n", pl.Row, pl.Column, pl.Rect)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "read the problem from a file (.toml or token stream)")
	cmd.Flags().BoolVar(&placements, "placements", false, "print one \"row col rect\" line per rook")
	return cmd
}
