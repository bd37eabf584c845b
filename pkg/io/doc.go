// Package io reads trees from files and writes layout results.
//
// # Tree Format
//
// A tree is a list whose first element is the label and whose remaining
// elements are child trees. A file holds a list of trees (a forest):
//
//	[
//	  ["root", ["left"], ["right", ["leaf"]]],
//	  ["second root"]
//	]
//
// The same structure in YAML:
//
//	- [root, [left], [right, [leaf]]]
//	- [second root]
//
// A file that holds a single bare tree (["A", ["B"]]) is read as a one-tree
// forest.
//
// # Labels
//
// A label is a string, a number or a boolean, displayed literally. An object
// with a "symbol" key marks a symbolic token whose dashes display as spaces:
//
//	[{"symbol": "left-hand-side"}, ["x"]]
//
// # Import
//
// [ReadJSON] and [ReadYAML] decode from any io.Reader; [ImportFile] picks the
// decoder from the file extension (.json, .yaml, .yml). All three validate the
// result with [tree.Validate].
//
// # Export
//
// [WriteTree] writes a forest back in the JSON tree format, so trees survive a
// round trip. [WriteShapes] and [ExportShapes] write the shape list produced by
// layout.Layout, for tools that want positions rather than text.
//
// [tree.Validate]: github.com/alphapapa/graph.el/pkg/tree.Validate
package io
