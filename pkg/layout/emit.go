package layout

import "github.com/alphapapa/graph.el/pkg/render"

// emitShapes converts placed rows to shapes: per node its box, the stem from
// the parent's connector, and for parents the connector plus the stem down to
// it.
func emitShapes(rows []row, opts Options) []render.Shape {
	lw := opts.LineWidth
	var shapes []render.Shape
	for _, r := range rows {
		for _, n := range r {
			shapes = append(shapes, render.Shape{
				X: col(n.x), Y: n.y,
				Width: n.width, Height: n.height,
				Kind:  render.KindBox,
				Text:  n.lines,
				OnTop: true,
			})
			sx := n.stemCol(lw)

			if n.hasParentLine && n.y > n.parentLineY {
				shapes = append(shapes, stem(sx, n.parentLineY, n.y-n.parentLineY, lw))
				if end := n.y - 1; end >= n.parentLineY+lw {
					shapes = append(shapes, stemEnd(sx, end, lw, opts.Arrows))
				}
			}

			if !n.leaf {
				lx, w := n.lineSpan(lw)
				shapes = append(shapes, render.Shape{X: lx, Y: n.lineY, Width: w, Height: lw, Kind: render.KindBox})
				if top := n.y + n.height; n.lineY >= top {
					shapes = append(shapes, stem(sx, top, n.lineY-top+1, lw))
					if n.lineY > top {
						shapes = append(shapes, render.Shape{
							X: sx, Y: top, Width: lw, Height: 1,
							Kind: render.KindCap, Direction: render.Up, OnTop: true,
						})
					}
				}
			}
		}
	}
	return shapes
}

func stem(x, y, h, lw int) render.Shape {
	return render.Shape{X: x, Y: y, Width: lw, Height: h, Kind: render.KindBox}
}

// stemEnd finishes a child stem just above the child's box.
func stemEnd(x, y, lw int, arrow bool) render.Shape {
	s := render.Shape{X: x, Y: y, Width: lw, Height: 1, Kind: render.KindCap, Direction: render.Down, OnTop: true}
	if arrow {
		s.Kind = render.KindArrow
	}
	return s
}
