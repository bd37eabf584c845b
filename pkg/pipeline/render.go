package pipeline

import (
	"bytes"
	"context"
	"fmt"

	"github.com/alphapapa/graph.el/pkg/io"
	"github.com/alphapapa/graph.el/pkg/render"
	"github.com/alphapapa/graph.el/pkg/render/nodelink"
	"github.com/alphapapa/graph.el/pkg/tree"
)

// RenderFormat produces one output format. Shapes are only needed for the
// text and shapes formats.
func RenderFormat(ctx context.Context, forest []tree.Node, shapes []render.Shape, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatText:
		return []byte(render.Text(shapes)), nil
	case FormatShapes:
		var buf bytes.Buffer
		if err := io.WriteShapes(shapes, &buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatDOT:
		return []byte(nodelink.ToDOT(forest, nodelink.Options{Detailed: opts.Detailed})), nil
	case FormatXDOT:
		return nodelink.RenderXDOT(ctx, nodelink.ToDOT(forest, nodelink.Options{Detailed: opts.Detailed}))
	default:
		return nil, ValidateFormat(format)
	}
}

// Render produces every requested format without touching a cache.
func Render(ctx context.Context, forest []tree.Node, shapes []render.Shape, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := RenderFormat(ctx, forest, shapes, format, opts)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}
