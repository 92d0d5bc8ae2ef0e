package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rookflow/flow"
	"github.com/katalvlaran/rookflow/render"
)

// renderCommand creates the render command, which draws the network of a
// problem, optionally after solving it.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		file, format, output string
		solve, residual      bool
	)
	cmd := &cobra.Command{
		Use:   "render [tokens...]",
		Short: "Draw a rook network as Graphviz DOT or SVG",
		Example: `  rookflow render --solve -o net.svg 2 2 0 0 0 1 1 0 1 0
  rookflow render -f problem.toml --format dot`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "dot" && format != "svg" {
				return fmt.Errorf("render: unknown format %q (want dot or svg)", format)
			}
			p, err := readProblem(c.Logger, cmd.InOrStdin(), file, args)
			if err != nil {
				return err
			}
			n, err := flow.NewNetwork(p, flow.WithLogger(c.Logger), flow.WithChunkSize(c.Config.Solver.QueueChunk))
			if err != nil {
				return err
			}
			title := ""
			if solve {
				res, err := n.Solve(cmd.Context())
				if err != nil {
					return err
				}
				title = fmt.Sprintf("max flow %d", res.Flow)
			}

			data := []byte(render.ToDOT(n, render.Options{Residual: residual, Title: title}))
			if format == "svg" {
				prog := newProgress(c.Logger)
				if data, err = render.RenderSVG(cmd.Context(), string(data)); err != nil {
					return err
				}
				prog.done("Rendered SVG")
			}

			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("render: write output: %w", err)
			}
			c.Logger.Info("wrote", "path", output, "bytes", len(data))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "read the problem from a file (.toml or token stream)")
	cmd.Flags().StringVar(&format, "format", "dot", "output format: dot or svg")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output path (default stdout)")
	cmd.Flags().BoolVar(&solve, "solve", false, "solve before drawing so saturated edges are highlighted")
	cmd.Flags().BoolVar(&residual, "residual", false, "also draw positive-capacity reverse edges")
	return cmd
}
