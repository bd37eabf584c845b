package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/alphapapa/graph.el/pkg/render"
	"github.com/alphapapa/graph.el/pkg/tree"
)

// WriteTree encodes forest in the nested-list tree format read by ReadJSON.
func WriteTree(forest []tree.Node, w io.Writer) error {
	out := make([]any, len(forest))
	for i, root := range forest {
		out[i] = encodeTree(root)
	}
	return writeJSON(out, w)
}

func encodeTree(n tree.Node) []any {
	var label any = n.Label
	if n.Symbol {
		label = map[string]string{symbolKey: n.Label}
	}
	out := make([]any, 0, len(n.Children)+1)
	out = append(out, label)
	for _, c := range n.Children {
		out = append(out, encodeTree(c))
	}
	return out
}

// WriteShapes encodes a shape list as indented JSON.
func WriteShapes(shapes []render.Shape, w io.Writer) error {
	if shapes == nil {
		shapes = []render.Shape{}
	}
	return writeJSON(shapes, w)
}

// ExportShapes writes a shape list to a JSON file at path.
func ExportShapes(shapes []render.Shape, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteShapes(shapes, f)
}

func writeJSON(v any, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
