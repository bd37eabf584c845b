// Package nodelink exports trees as Graphviz node-link graphs.
//
// The ASCII layout in the parent packages is self-contained; this package is
// for handing the same tree to other tools. [ToDOT] produces DOT source with
// one box per node and one edge per parent/child pair:
//
//	dot := nodelink.ToDOT(forest, nodelink.Options{})
//
// [RenderXDOT] runs Graphviz in-process and returns DOT annotated with the
// positions Graphviz chose, which is handy for comparing layouts:
//
//	out, err := nodelink.RenderXDOT(ctx, dot)
//
// Graphviz is provided by [github.com/goccy/go-graphviz], which bundles the
// engine as WebAssembly; no system installation is needed.
package nodelink
