package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alphapapa/graph.el/pkg/pipeline"
)

// layoutCommand creates the layout command, which prints the shape list as
// JSON for consumption by other renderers.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output string
		lf     layoutFlags
		cf     cacheFlags
	)

	cmd := &cobra.Command{
		Use:   "layout [file]",
		Short: "Compute shapes for a tree file and print them as JSON",
		Long: `Layout computes the positioned boxes, lines, caps and arrows for a tree
without drawing them. Each shape has x, y, width, height, kind and, for boxes,
the wrapped label text.`,
		Example: `  graphel layout tree.json -o shapes.json`,
		Args:    cobra.ExactArgs(1),
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

			result, err := runner.Execute(cmd.Context(), args[0], pipeline.Options{
				Layout:  lf.apply(cmd, cfg.Layout),
				Formats: []string{pipeline.FormatShapes},
				Refresh: cf.refresh,
			})
			if err != nil {
				return err
			}

			data := result.Artifacts[pipeline.FormatShapes]
			if output == "" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printSuccess("Wrote %d shapes", len(result.Shapes))
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	lf.register(cmd)
	cf.register(cmd)

	return cmd
}
