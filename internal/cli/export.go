package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alphapapa/graph.el/pkg/pipeline"
)

// exportCommand creates the export command, which writes a tree as Graphviz.
func (c *CLI) exportCommand() *cobra.Command {
	var (
		output   string
		format   string
		detailed bool
		cf       cacheFlags
	)

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export a tree file as Graphviz DOT",
		Long: `Export writes the tree as a Graphviz digraph. The dot format is plain DOT
source; xdot runs the Graphviz layout engine and adds drawing attributes.`,
		Example: `  graphel export tree.json | dot -Tsvg > tree.svg
  graphel export tree.json -f xdot --detailed -o tree.xdot`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != pipeline.FormatDOT && format != pipeline.FormatXDOT {
				return fmt.Errorf("invalid format: %q (must be dot or xdot)", format)
			}
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			runner, err := c.newRunner(cfg, cf.noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			var spinner *Spinner
			if format == pipeline.FormatXDOT && output != "" {
				spinner = newSpinnerWithContext(cmd.Context(), os.Stderr, "Running Graphviz...")
				spinner.Start()
			}
			result, err := runner.Execute(cmd.Context(), args[0], pipeline.Options{
				Layout:   cfg.Layout,
				Formats:  []string{format},
				Detailed: detailed,
				Refresh:  cf.refresh,
			})
			if spinner != nil {
				spinner.Stop()
			}
			if err != nil {
				return err
			}

			data := result.Artifacts[format]
			if output == "" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printSuccess("Exported %s", args[0])
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", pipeline.FormatDOT, "output format: dot or xdot")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include node ids in labels")
	cf.register(cmd)

	return cmd
}
