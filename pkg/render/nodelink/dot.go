package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/alphapapa/graph.el/pkg/tree"
)

// Options configures DOT generation.
type Options struct {
	// Detailed appends each node's pre-order id to its label.
	Detailed bool
}

// ToDOT writes forest as a Graphviz digraph. Nodes are named n<id> after
// pre-order numbering and keep their input order, so the output is stable.
func ToDOT(forest []tree.Node, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  node [shape=box, fontname=\"monospace\"];\n")
	buf.WriteString("  ordering=out;\n")

	var edges []string
	var walk func(n tree.Node)
	walk = func(n tree.Node) {
		fmt.Fprintf(&buf, "  n%d [label=%q];\n", n.ID, fmtLabel(n, opts.Detailed))
		for _, c := range n.Children {
			edges = append(edges, fmt.Sprintf("  n%d -> n%d;\n", n.ID, c.ID))
			walk(c)
		}
	}
	for _, root := range tree.Number(forest) {
		walk(root)
	}

	if len(edges) > 0 {
		buf.WriteString("\n")
		buf.WriteString(strings.Join(edges, ""))
	}
	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(n tree.Node, detailed bool) string {
	if !detailed {
		return n.Text()
	}
	return fmt.Sprintf("%s\n#%d", n.Text(), n.ID)
}

// RenderXDOT runs the Graphviz layout engine over dot and returns the
// positioned DOT it produces, with coordinates for every node and edge.
func RenderXDOT(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.XDOT, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
