// Package pkg holds the graphel libraries.
//
// # Overview
//
// graphel draws trees as compact ASCII box diagrams. The packages split into
// three areas:
//
//  1. Core: [tree] (the input model), [layout] (shape placement) and [render]
//     (the ASCII compositor and Graphviz export)
//  2. Infrastructure: [cache], [config], [errors], [io] and [observability]
//  3. Orchestration: [pipeline] (read → layout → render with caching)
//
// # Architecture
//
//	JSON/YAML tree file
//	         ↓
//	    [io] package (decode into a forest of [tree.Node])
//	         ↓
//	    [layout] package (rows, spacing, connectors, vertical packing)
//	         ↓
//	    [render] package (shapes → text)
//
// # Quick Start
//
//	forest := []tree.Node{
//	    tree.New("A", tree.New("B"), tree.New("C")),
//	}
//	fmt.Print(layout.Render(forest, layout.DefaultOptions()))
//
// Output:
//
//	   +---+
//	   | A |
//	   +---+
//	     |
//	  +--+--+
//	  |     |
//	+---+ +---+
//	| B | | C |
//	+---+ +---+
//
// [tree]: github.com/alphapapa/graph.el/pkg/tree
// [layout]: github.com/alphapapa/graph.el/pkg/layout
// [render]: github.com/alphapapa/graph.el/pkg/render
// [cache]: github.com/alphapapa/graph.el/pkg/cache
// [config]: github.com/alphapapa/graph.el/pkg/config
// [errors]: github.com/alphapapa/graph.el/pkg/errors
// [io]: github.com/alphapapa/graph.el/pkg/io
// [observability]: github.com/alphapapa/graph.el/pkg/observability
// [pipeline]: github.com/alphapapa/graph.el/pkg/pipeline
// [tree.Node]: github.com/alphapapa/graph.el/pkg/tree#Node
package pkg
