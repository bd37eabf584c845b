package layout

import "slices"

// packRows assigns vertical positions with a single height profile shared by
// the whole tree. Within a row all boxes are placed first, then the row's
// connectors, level 0 before level 1.
func packRows(rows []row, opts Options) []row {
	out := cloneRows(rows)
	sc := newScan()

	for _, r := range out {
		for i := range r {
			x := col(r[i].x)
			y := sc.lowestFree(x, r[i].width)
			r[i].y = y
			sc.add(x, y+r[i].height+opts.LinePadding, r[i].width)
		}

		stackLines(r, sc, opts)
	}
	return out
}

// stackLines places the connectors of r on sc, level 0 before level 1, and
// returns the lowest profile value they leave behind.
func stackLines(r row, sc *scan, opts Options) int {
	lw := opts.LineWidth
	var parents []int
	for i := range r {
		if !r[i].leaf {
			parents = append(parents, i)
		}
	}
	slices.SortStableFunc(parents, func(a, b int) int {
		return r[a].lineLevel - r[b].lineLevel
	})

	bottom := 0
	for _, i := range parents {
		x, w := r[i].lineSpan(lw)
		y := sc.lowestFree(x, w)
		r[i].lineY = y
		sc.add(x, y+lw+opts.LinePadding, w)
		bottom = max(bottom, y+lw+opts.LinePadding)
	}
	return bottom
}

// propagateLines copies each parent's connector row to its children.
func propagateLines(rows []row) []row {
	out := cloneRows(rows)
	for k := 1; k < len(out); k++ {
		above, idx := out[k-1], out[k-1].index()
		for i := range out[k] {
			p := above[idx[out[k][i].parent]]
			out[k][i].parentLineY = p.lineY
			out[k][i].hasParentLine = true
		}
	}
	return out
}
