// Package pipeline runs the read → layout → render stages with caching.
//
// The CLI goes through a [Runner] rather than calling the layout package
// directly, so that every entry point shares one caching and instrumentation
// path.
//
// # Stages
//
//  1. Read: decode a tree file (JSON or YAML) into a forest.
//  2. Layout: compute the shape list with layout.Layout.
//  3. Render: turn the forest and shapes into one or more output formats.
//
// # Formats
//
//   - text: the ASCII diagram
//   - shapes: the shape list as JSON
//   - dot: Graphviz DOT source of the tree
//   - xdot: DOT positioned by Graphviz
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, "tree.json", pipeline.Options{
//	    Layout:  layout.DefaultOptions(),
//	    Formats: []string{pipeline.FormatText},
//	})
//	fmt.Print(string(result.Artifacts[pipeline.FormatText]))
package pipeline

import (
	"sort"
	"strings"
	"time"

	"github.com/alphapapa/graph.el/pkg/cache"
	"github.com/alphapapa/graph.el/pkg/errors"
	"github.com/alphapapa/graph.el/pkg/layout"
	"github.com/alphapapa/graph.el/pkg/render"
	"github.com/alphapapa/graph.el/pkg/tree"
)

// Output formats.
const (
	FormatText   = "text"
	FormatShapes = "shapes"
	FormatDOT    = "dot"
	FormatXDOT   = "xdot"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatText:   true,
	FormatShapes: true,
	FormatDOT:    true,
	FormatXDOT:   true,
}

// FormatNames returns the supported formats, sorted.
func FormatNames() []string {
	names := make([]string, 0, len(ValidFormats))
	for f := range ValidFormats {
		names = append(names, f)
	}
	sort.Strings(names)
	return names
}

// Options configures a pipeline run.
type Options struct {
	Layout  layout.Options `json:"layout"`
	Formats []string       `json:"formats,omitempty"`

	// Detailed adds node ids to DOT labels.
	Detailed bool `json:"detailed,omitempty"`
	// Refresh skips cache reads; results are still written back.
	Refresh bool `json:"refresh,omitempty"`
}

// Result holds the outputs of Execute.
type Result struct {
	Forest    []tree.Node
	TreeHash  string
	Shapes    []render.Shape
	Artifacts map[string][]byte
	Stats     Stats
	CacheInfo CacheInfo
}

// Stats holds timing and size information for a run.
type Stats struct {
	layout.Stats
	ReadTime   time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo records which stages were served from the cache.
type CacheInfo struct {
	LayoutHit bool
	RenderHit bool // every requested artifact came from the cache
}

// ValidateFormat checks that format is supported.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: %s)", format, strings.Join(FormatNames(), ", "))
	}
	return nil
}

// ValidateFormats checks every entry of formats.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the layout options and formats, defaulting the formats to
// text when none are given.
func (o *Options) Validate() error {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatText}
	}
	if err := o.Layout.Validate(); err != nil {
		return err
	}
	return ValidateFormats(o.Formats)
}

// LayoutKeyOpts returns the cache key options for the layout stage.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		WrapThreshold: o.Layout.WrapThreshold,
		NodePadding:   o.Layout.NodePadding,
		RowPadding:    o.Layout.RowPadding,
		LineWidth:     o.Layout.LineWidth,
		LinePadding:   o.Layout.LinePadding,
		Arrows:        o.Layout.Arrows,
	}
}

// ArtifactKeyOpts returns the cache key options for one rendered format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	if o.Detailed && (format == FormatDOT || format == FormatXDOT) {
		format += "+detailed"
	}
	return cache.ArtifactKeyOpts{Format: format}
}
