package render

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// span is the outcome of drawing one shape on one line, including any shapes
// drawn nested inside it.
type span struct {
	cursor    int     // first column not yet committed
	remaining []Shape // shapes on this line still to be drawn, sorted
	text      string  // text produced, starting at the incoming cursor
}

// Text renders shapes to ASCII. It emits one line per y-coordinate from 0 to
// the bottom of the lowest shape, each padded with spaces to the rightmost shape
// edge and terminated by a newline. Rows above 0 and columns left of 0 are
// cropped. An empty list renders as the empty string.
func Text(shapes []Shape) string {
	width, height := Extent(shapes)

	var b strings.Builder
	for y := 0; y < height; y++ {
		line := Line(shapes, y)
		b.WriteString(line)
		if pad := width - utf8.RuneCountInString(line); pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Extent returns the rightmost and bottommost shape edges, which are the
// column and line counts of the rendered text.
func Extent(shapes []Shape) (width, height int) {
	for _, s := range shapes {
		if s.Width <= 0 || s.Height <= 0 {
			continue
		}
		width = max(width, s.Right())
		height = max(height, s.Bottom())
	}
	return width, height
}

// Line renders the single text line y without trailing padding.
func Line(shapes []Shape, y int) string {
	queue := lineShapes(shapes, y)

	var b strings.Builder
	cursor := 0
	for len(queue) > 0 {
		sp := draw(queue[0], queue[1:], cursor, y)
		b.WriteString(sp.text)
		cursor, queue = sp.cursor, sp.remaining
	}
	return b.String()
}

// lineShapes returns the shapes crossing line y in drawing order: left edge
// ascending, then narrower first, then taller first.
func lineShapes(shapes []Shape, y int) []Shape {
	var out []Shape
	for _, s := range shapes {
		if s.crosses(y) {
			out = append(out, s)
		}
	}
	slices.SortStableFunc(out, func(a, b Shape) int {
		if a.X != b.X {
			return a.X - b.X
		}
		if a.Width != b.Width {
			return a.Width - b.Width
		}
		return b.Height - a.Height
	})
	return out
}

// draw paints s on line y starting no earlier than cursor. Shapes in rest that
// start inside s either nest inside it, are hidden by it, or truncate it.
func draw(s Shape, rest []Shape, cursor, y int) span {
	end := s.Right()
	if cursor >= end {
		return span{cursor: cursor, remaining: rest}
	}

	glyphs := []rune(s.row(y))
	var b strings.Builder
	pos := cursor
	if s.X > pos {
		b.WriteString(strings.Repeat(" ", s.X-pos))
		pos = s.X
	}
	paint := func(to int) {
		if to > pos {
			b.WriteString(string(glyphs[pos-s.X : to-s.X]))
			pos = to
		}
	}

	var deferred []Shape
	for len(rest) > 0 && rest[0].X < end {
		next := rest[0]
		enclosed := next.Right() <= end
		switch {
		case enclosed && (!s.OnTop || next.OnTop):
			paint(next.X)
			inner := draw(next, rest[1:], pos, y)
			b.WriteString(inner.text)
			pos, rest = inner.cursor, inner.remaining
		case enclosed:
			rest = rest[1:]
		case next.X > s.X:
			paint(next.X)
			return span{cursor: pos, remaining: append(deferred, rest...), text: b.String()}
		default:
			// Wider shape sharing our left edge: it resumes after us.
			deferred = append(deferred, next)
			rest = rest[1:]
		}
	}
	paint(end)
	return span{cursor: pos, remaining: append(deferred, rest...), text: b.String()}
}
