// Package render composites rectangular shapes into monospace ASCII text.
//
// # Overview
//
// The compositor knows nothing about trees. It takes an arbitrary list of
// axis-aligned [Shape] values, possibly overlapping, and produces one text line
// per y-coordinate from 0 to the bottom edge of the tallest shape:
//
//	shapes := []render.Shape{
//	    {X: 0, Y: 0, Width: 9, Height: 3, Kind: render.KindBox, Text: []string{" hello"}},
//	}
//	fmt.Print(render.Text(shapes))
//	// +-------+
//	// | hello |
//	// +-------+
//
// # Shapes
//
// A [KindBox] shape draws "+" corners and "-" fill on its top and bottom rows
// and "|" borders around its text on body rows. One-unit boxes double as
// connector lines: a one-row box renders as "+----+" and a one-column box as a
// vertical run of "|" between "+" ends. [KindCap] and [KindArrow] shapes draw a
// single glyph chosen by their [Direction], and are used to finish line ends.
//
// # Occlusion
//
// On every line the shapes crossing it are sorted by x (narrower first, taller
// first on exact ties) and painted left to right with a cursor. A shape is
// truncated by the next shape that starts inside it, unless that shape is fully
// enclosed, in which case the enclosed shape is drawn nested and the outer one
// resumes afterwards. The OnTop flag lets an outer shape hide enclosed shapes
// that are not themselves on top.
//
// # Node-Link Export
//
// The [nodelink] subpackage writes the same trees as Graphviz DOT for use with
// external tooling.
//
// [nodelink]: github.com/alphapapa/graph.el/pkg/render/nodelink
package render
