package cli

import (
	"github.com/spf13/cobra"

	"github.com/alphapapa/graph.el/pkg/layout"
)

// layoutFlags holds the layout tuning flags shared by the render, layout,
// export and view commands.
type layoutFlags struct {
	wrap        int
	nodePadding int
	rowPadding  int
	lineWidth   int
	linePadding int
	arrows      bool
}

// register adds the layout flags to cmd with the built-in defaults.
func (f *layoutFlags) register(cmd *cobra.Command) {
	d := layout.DefaultOptions()
	flags := cmd.Flags()
	flags.IntVarP(&f.wrap, "wrap", "w", d.WrapThreshold, "wrap labels longer than this many characters")
	flags.IntVar(&f.nodePadding, "node-padding", d.NodePadding, "columns between sibling boxes")
	flags.IntVar(&f.rowPadding, "row-padding", d.RowPadding, "connector region height assumed by the naive row-by-row height reported with -v")
	flags.IntVar(&f.lineWidth, "line-width", d.LineWidth, "thickness of connector lines")
	flags.IntVar(&f.linePadding, "line-padding", d.LinePadding, "clearance between connector lines")
	flags.BoolVar(&f.arrows, "arrows", d.Arrows, "end connectors in arrow heads")
}

// apply overlays the flags the user set explicitly onto base, so that config
// file values survive unless overridden on the command line.
func (f *layoutFlags) apply(cmd *cobra.Command, base layout.Options) layout.Options {
	flags := cmd.Flags()
	if flags.Changed("wrap") {
		base.WrapThreshold = f.wrap
	}
	if flags.Changed("node-padding") {
		base.NodePadding = f.nodePadding
	}
	if flags.Changed("row-padding") {
		base.RowPadding = f.rowPadding
	}
	if flags.Changed("line-width") {
		base.LineWidth = f.lineWidth
	}
	if flags.Changed("line-padding") {
		base.LinePadding = f.linePadding
	}
	if flags.Changed("arrows") {
		base.Arrows = f.arrows
	}
	return base
}

// cacheFlags controls cache use for a single command.
type cacheFlags struct {
	noCache bool
	refresh bool
}

func (f *cacheFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "recompute even if cached")
}
