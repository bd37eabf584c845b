package layout

import (
	"slices"

	"github.com/alphapapa/graph.el/pkg/render"
	"github.com/alphapapa/graph.el/pkg/tree"
)

// Layout places forest and returns the shapes that draw it. Boxes come in row
// order, each followed by its connector shapes. Out-of-range options are
// replaced with defaults. An empty forest yields no shapes.
func Layout(forest []tree.Node, opts Options) []render.Shape {
	if len(forest) == 0 {
		return nil
	}
	opts = opts.sanitize()

	rows := buildRows(forest, opts)
	rows = spaceRows(rows, opts)
	rows = connectRows(rows, opts)
	rows = packRows(rows, opts)
	rows = propagateLines(rows)
	return emitShapes(rows, opts)
}

// Render lays out forest and composites it to ASCII text.
func Render(forest []tree.Node, opts Options) string {
	return render.Text(Layout(forest, opts))
}

// NaiveHeight is the height forest would take if rows were stacked one under
// another: each row as tall as its tallest box, followed by a connector region
// of RowPadding lines, or deeper when the row's connectors stack further. The
// packed layout never exceeds it.
func NaiveHeight(forest []tree.Node, opts Options) int {
	if len(forest) == 0 {
		return 0
	}
	opts = opts.sanitize()
	rows := buildRows(forest, opts)
	rows = spaceRows(rows, opts)
	rows = connectRows(rows, opts)

	h := 0
	for k, r := range rows {
		tallest := 0
		for _, n := range r {
			tallest = max(tallest, n.height)
		}
		h += tallest
		if k < len(rows)-1 {
			h += max(opts.RowPadding, opts.LinePadding+connectorDepth(r, opts))
		}
	}
	return h
}

// connectorDepth is how far the connectors of r reach when stacked on a flat
// floor.
func connectorDepth(r row, opts Options) int {
	return stackLines(slices.Clone(r), newScan(), opts)
}

// Stats summarises a finished layout.
type Stats struct {
	Nodes       int `json:"nodes"`
	Rows        int `json:"rows"`
	Width       int `json:"width"`
	Height      int `json:"height"`
	NaiveHeight int `json:"naive_height"`
}

// Measure returns the stats for forest laid out with opts.
func Measure(forest []tree.Node, shapes []render.Shape, opts Options) Stats {
	w, h := render.Extent(shapes)
	return Stats{
		Nodes:       tree.Count(forest),
		Rows:        tree.Depth(forest),
		Width:       w,
		Height:      h,
		NaiveHeight: NaiveHeight(forest, opts),
	}
}
