package layout

import (
	"github.com/alphapapa/graph.el/pkg/errors"
)

// Default values for Options.
const (
	DefaultWrapThreshold = 10
	DefaultNodePadding   = 1
	DefaultRowPadding    = 8
	DefaultLineWidth     = 1
	DefaultLinePadding   = 1
)

// Options tunes the layout. The zero value is not useful; start from
// DefaultOptions.
type Options struct {
	// WrapThreshold is the label length at which text wraps.
	WrapThreshold int `toml:"wrap_threshold" json:"wrap_threshold"`
	// NodePadding is the number of columns between horizontally adjacent boxes.
	NodePadding int `toml:"node_padding" json:"node_padding"`
	// RowPadding is the minimum connector region between rows in naive
	// row-by-row stacking. It does not affect the packed layout; it only sets
	// the baseline reported by NaiveHeight.
	RowPadding int `toml:"row_padding" json:"row_padding"`
	// LineWidth is the thickness of connector lines.
	LineWidth int `toml:"line_width" json:"line_width"`
	// LinePadding is the clearance kept below boxes and connector lines.
	LinePadding int `toml:"line_padding" json:"line_padding"`
	// Arrows ends each child stem in a "V" arrow head instead of a "|" cap.
	Arrows bool `toml:"arrows" json:"arrows"`
}

// DefaultOptions returns the standard settings.
func DefaultOptions() Options {
	return Options{
		WrapThreshold: DefaultWrapThreshold,
		NodePadding:   DefaultNodePadding,
		RowPadding:    DefaultRowPadding,
		LineWidth:     DefaultLineWidth,
		LinePadding:   DefaultLinePadding,
	}
}

// Validate reports options that Layout would have to correct.
func (o Options) Validate() error {
	switch {
	case o.WrapThreshold < 1:
		return errors.New(errors.ErrCodeInvalidConfig, "wrap threshold must be at least 1, got %d", o.WrapThreshold)
	case o.LineWidth < 1:
		return errors.New(errors.ErrCodeInvalidConfig, "line width must be at least 1, got %d", o.LineWidth)
	case o.NodePadding < 0:
		return errors.New(errors.ErrCodeInvalidConfig, "node padding cannot be negative, got %d", o.NodePadding)
	case o.RowPadding < 0:
		return errors.New(errors.ErrCodeInvalidConfig, "row padding cannot be negative, got %d", o.RowPadding)
	case o.LinePadding < 0:
		return errors.New(errors.ErrCodeInvalidConfig, "line padding cannot be negative, got %d", o.LinePadding)
	}
	return nil
}

// sanitize replaces out-of-range values so the core never fails.
func (o Options) sanitize() Options {
	if o.WrapThreshold < 1 {
		o.WrapThreshold = DefaultWrapThreshold
	}
	if o.LineWidth < 1 {
		o.LineWidth = DefaultLineWidth
	}
	o.NodePadding = max(o.NodePadding, 0)
	o.RowPadding = max(o.RowPadding, 0)
	o.LinePadding = max(o.LinePadding, 0)
	return o
}
