package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alphapapa/graph.el/pkg/pipeline"
)

// renderCommand creates the render command, which draws a tree as ASCII.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output string
		lf     layoutFlags
		cf     cacheFlags
	)

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Draw a tree file as ASCII boxes",
		Long: `Render lays out the tree in a JSON or YAML file and prints the ASCII diagram.

Each tree is a list whose first element is the node label and whose remaining
elements are child trees. A file may hold a single tree or a list of trees.`,
		Example: `  # Print a tree to the terminal
  graphel render tree.json

  # Arrow heads and narrower labels, written to a file
  graphel render tree.yaml --wrap 16 --arrows -o tree.txt

  # Compare the packed height with naive row-by-row stacking
  graphel render tree.json -v --row-padding 4`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			runner, err := c.newRunner(cfg, cf.noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			prog := newProgress(c.Logger)
			result, err := runner.Execute(cmd.Context(), args[0], pipeline.Options{
				Layout:  lf.apply(cmd, cfg.Layout),
				Formats: []string{pipeline.FormatText},
				Refresh: cf.refresh,
			})
			if err != nil {
				return err
			}
			c.Logger.Debug("packed layout",
				"height", result.Stats.Height,
				"naive_height", result.Stats.NaiveHeight,
				"rows", result.Stats.Rows)

			text := result.Artifacts[pipeline.FormatText]
			if output == "" {
				_, err := cmd.OutOrStdout().Write(text)
				return err
			}
			if err := os.WriteFile(output, text, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			prog.done(fmt.Sprintf("Rendered %d nodes", result.Stats.Nodes))
			printSuccess("Rendered %s", args[0])
			printFile(output)
			printStats(result.Stats.Stats, result.CacheInfo.LayoutHit)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	lf.register(cmd)
	cf.register(cmd)

	return cmd
}
