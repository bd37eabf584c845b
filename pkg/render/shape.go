package render

import "strings"

// Kind selects how a shape is drawn.
type Kind int

const (
	// KindBox is a bordered rectangle with optional body text.
	KindBox Kind = iota
	// KindArrow draws an arrow head pointing in the shape's direction.
	KindArrow
	// KindCap draws a straight line end (| or -) matching the direction.
	KindCap
)

var kindNames = map[Kind]string{
	KindBox:   "box",
	KindArrow: "arrow",
	KindCap:   "cap",
}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Direction orients arrow and cap glyphs.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

var directionNames = map[Direction]string{
	Up:    "up",
	Down:  "down",
	Left:  "left",
	Right: "right",
}

// String returns the lower-case name of the direction.
func (d Direction) String() string {
	if s, ok := directionNames[d]; ok {
		return s
	}
	return "unknown"
}

// Glyphs used by the compositor.
const (
	glyphCorner = '+'
	glyphHoriz  = '-'
	glyphVert   = '|'
)

var arrowGlyphs = map[Direction]byte{
	Up:    '^',
	Down:  'V',
	Left:  '<',
	Right: '>',
}

// Shape is a renderable rectangle. Y grows downward and (X, Y) is the top-left
// corner. Width and Height are at least 1 for a shape to be visible.
type Shape struct {
	X         int       `json:"x"`
	Y         int       `json:"y"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Kind      Kind      `json:"kind"`
	Text      []string  `json:"text,omitempty"`
	Direction Direction `json:"direction,omitempty"`
	OnTop     bool      `json:"on_top,omitempty"`
}

// Right returns the first column past the shape.
func (s Shape) Right() int { return s.X + s.Width }

// Bottom returns the first row below the shape.
func (s Shape) Bottom() int { return s.Y + s.Height }

// crosses reports whether the shape covers row y.
func (s Shape) crosses(y int) bool {
	return s.Width > 0 && s.Height > 0 && y >= s.Y && y < s.Bottom()
}

// Overlaps reports whether two shapes share at least one cell.
func (s Shape) Overlaps(o Shape) bool {
	return s.X < o.Right() && o.X < s.Right() && s.Y < o.Bottom() && o.Y < s.Bottom()
}

// row returns the full Width-column rendering of the shape at line y.
func (s Shape) row(y int) string {
	switch s.Kind {
	case KindArrow:
		return strings.Repeat(string(arrowGlyphs[s.Direction]), s.Width)
	case KindCap:
		g := glyphVert
		if s.Direction == Left || s.Direction == Right {
			g = glyphHoriz
		}
		return strings.Repeat(string(g), s.Width)
	}

	r := y - s.Y
	if r == 0 || r == s.Height-1 {
		return edge(s.Width)
	}
	if s.Width <= 2 {
		return strings.Repeat(string(glyphVert), s.Width)
	}
	var text string
	if r-1 < len(s.Text) {
		text = s.Text[r-1]
	}
	return string(glyphVert) + fit(text, s.Width-2) + string(glyphVert)
}

// edge returns a top or bottom border of width w.
func edge(w int) string {
	if w <= 2 {
		return strings.Repeat(string(glyphCorner), w)
	}
	return string(glyphCorner) + strings.Repeat(string(glyphHoriz), w-2) + string(glyphCorner)
}

// fit pads or cuts s to exactly w runes.
func fit(s string, w int) string {
	r := []rune(s)
	if len(r) >= w {
		return string(r[:w])
	}
	return s + strings.Repeat(" ", w-len(r))
}
