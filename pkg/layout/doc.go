// Package layout places a tree of labelled boxes on a character grid and emits
// the shapes that draw it.
//
// # Pipeline
//
// [Layout] runs a fixed sequence of passes, each producing new rows from the
// previous ones rather than mutating them:
//
//  1. Rows: the forest is flattened breadth first into rows; labels are wrapped
//     and boxes sized.
//  2. Spacing: the widest row (the anchor) is packed left to right. Rows above
//     it centre parents over their children, rows below centre each sibling
//     group under its parent. Nodes never move left of the running cursor nor
//     past the anchor's width.
//  3. Connectors: every parent gets a horizontal line spanning its own centre
//     and its children's centres. Overlapping lines in a row alternate levels.
//  4. Packing: a run-length height profile (the scan) pushes boxes and then
//     lines up into free space, row by row.
//  5. Emission: boxes, horizontal connectors and vertical stems become
//     [render.Shape] values with integer coordinates.
//
// [Render] feeds the shapes to [render.Text].
//
// # Options
//
// [Options] carries the tunables. [DefaultOptions] wraps labels at 10
// characters with one column between siblings:
//
//	fmt.Print(layout.Render(forest, layout.DefaultOptions()))
//
// The package is pure: no logging, no I/O, and no state survives a call.
package layout
