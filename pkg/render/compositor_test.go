package render

import (
	"strings"
	"testing"
)

func TestTextSingleBox(t *testing.T) {
	s := Shape{X: 0, Y: 0, Width: 7, Height: 3, Kind: KindBox, Text: []string{" abc"}}
	want := "+-----+\n" +
		"| abc |\n" +
		"+-----+\n"
	if got := Text([]Shape{s}); got != want {
		t.Errorf("Text() =\n%s\nwant\n%s", got, want)
	}
}

func TestTextBoxRoundTrip(t *testing.T) {
	lines := []string{" first", " second", " x"}
	s := Shape{X: 0, Y: 0, Width: 11, Height: len(lines) + 2, Kind: KindBox, Text: lines}

	got := strings.Split(strings.TrimSuffix(Text([]Shape{s}), "\n"), "\n")
	if len(got) != s.Height {
		t.Fatalf("got %d lines, want %d", len(got), s.Height)
	}
	border := "+" + strings.Repeat("-", s.Width-2) + "+"
	if got[0] != border || got[len(got)-1] != border {
		t.Errorf("borders = %q / %q, want %q", got[0], got[len(got)-1], border)
	}
	for i, l := range lines {
		want := "|" + l + strings.Repeat(" ", s.Width-2-len(l)) + "|"
		if got[i+1] != want {
			t.Errorf("line %d = %q, want %q", i+1, got[i+1], want)
		}
	}
}

func TestTextEmpty(t *testing.T) {
	if got := Text(nil); got != "" {
		t.Errorf("Text(nil) = %q, want empty", got)
	}
}

func TestLine(t *testing.T) {
	tests := []struct {
		name   string
		shapes []Shape
		y      int
		want   string
	}{
		{
			name: "gap between shapes is spaces",
			shapes: []Shape{
				{X: 0, Y: 0, Width: 3, Height: 1},
				{X: 5, Y: 0, Width: 3, Height: 1},
			},
			want: "+-+  +-+",
		},
		{
			name: "enclosed shape nests inside",
			shapes: []Shape{
				{X: 0, Y: 0, Width: 7, Height: 1},
				{X: 3, Y: 0, Width: 1, Height: 2},
			},
			want: "+--+--+",
		},
		{
			name: "stem below a line",
			shapes: []Shape{
				{X: 0, Y: 0, Width: 7, Height: 1},
				{X: 3, Y: 0, Width: 1, Height: 3},
			},
			y:    1,
			want: "   |",
		},
		{
			name: "overlapping shape truncates the previous one",
			shapes: []Shape{
				{X: 0, Y: 0, Width: 5, Height: 1},
				{X: 3, Y: 0, Width: 5, Height: 1},
			},
			want: "+--+---+",
		},
		{
			name: "narrower shape wins a shared left edge",
			shapes: []Shape{
				{X: 0, Y: 0, Width: 4, Height: 1},
				{X: 0, Y: 0, Width: 1, Height: 1, Kind: KindCap, Direction: Right},
			},
			want: "---+",
		},
		{
			name: "shorter shape nests on an exact tie",
			shapes: []Shape{
				{X: 2, Y: 0, Width: 1, Height: 3},
				{X: 2, Y: 0, Width: 1, Height: 1, Kind: KindCap, Direction: Up},
			},
			want: "  |",
		},
		{
			name: "on-top box hides enclosed shape",
			shapes: []Shape{
				{X: 0, Y: 0, Width: 5, Height: 3, OnTop: true},
				{X: 2, Y: 1, Width: 1, Height: 1, Kind: KindArrow, Direction: Down},
			},
			y:    1,
			want: "|   |",
		},
		{
			name: "on-top shape nests inside on-top box",
			shapes: []Shape{
				{X: 0, Y: 0, Width: 5, Height: 3, OnTop: true},
				{X: 2, Y: 1, Width: 1, Height: 1, Kind: KindArrow, Direction: Down, OnTop: true},
			},
			y:    1,
			want: "| V |",
		},
		{
			name: "left edge is cropped",
			shapes: []Shape{
				{X: -2, Y: 0, Width: 5, Height: 1},
			},
			want: "--+",
		},
		{
			name: "arrow glyphs",
			shapes: []Shape{
				{X: 0, Y: 0, Width: 1, Height: 1, Kind: KindArrow, Direction: Left},
				{X: 1, Y: 0, Width: 1, Height: 1, Kind: KindArrow, Direction: Right},
				{X: 2, Y: 0, Width: 1, Height: 1, Kind: KindArrow, Direction: Up},
				{X: 3, Y: 0, Width: 1, Height: 1, Kind: KindArrow, Direction: Down},
			},
			want: "<>^V",
		},
		{
			name: "line outside the shapes",
			shapes: []Shape{
				{X: 0, Y: 0, Width: 3, Height: 1},
			},
			y:    4,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Line(tt.shapes, tt.y); got != tt.want {
				t.Errorf("Line() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTextIsRectangular(t *testing.T) {
	shapes := []Shape{
		{X: 4, Y: 0, Width: 5, Height: 3, Text: []string{" A"}},
		{X: 6, Y: 3, Width: 1, Height: 2},
		{X: 0, Y: 4, Width: 12, Height: 1},
		{X: 0, Y: 5, Width: 5, Height: 3, Text: []string{" B"}},
	}
	out := Text(shapes)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 8 {
		t.Fatalf("got %d lines, want 8", len(lines))
	}
	for i, l := range lines {
		if len(l) != 12 {
			t.Errorf("line %d has width %d, want 12: %q", i, len(l), l)
		}
	}
}

func TestExtent(t *testing.T) {
	w, h := Extent([]Shape{
		{X: 2, Y: 1, Width: 3, Height: 2},
		{X: 0, Y: 0, Width: 1, Height: 6},
		{X: 50, Y: 50, Width: 0, Height: 0},
	})
	if w != 5 || h != 6 {
		t.Errorf("Extent() = (%d, %d), want (5, 6)", w, h)
	}
}

func TestOverlaps(t *testing.T) {
	a := Shape{X: 0, Y: 0, Width: 5, Height: 3}
	tests := []struct {
		name string
		b    Shape
		want bool
	}{
		{"touching right edge", Shape{X: 5, Y: 0, Width: 2, Height: 3}, false},
		{"touching bottom edge", Shape{X: 0, Y: 3, Width: 2, Height: 3}, false},
		{"inside", Shape{X: 1, Y: 1, Width: 1, Height: 1}, true},
		{"corner overlap", Shape{X: 4, Y: 2, Width: 3, Height: 3}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStrings(t *testing.T) {
	if KindCap.String() != "cap" || Kind(9).String() != "unknown" {
		t.Errorf("Kind.String() = %q / %q", KindCap.String(), Kind(9).String())
	}
	if Left.String() != "left" || Direction(9).String() != "unknown" {
		t.Errorf("Direction.String() = %q / %q", Left.String(), Direction(9).String())
	}
}
