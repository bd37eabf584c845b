package layout

// spaceRows assigns horizontal positions. The first widest row is packed from
// x=0 and fixes the total width; rows above centre parents over their
// children and rows below centre sibling groups under their parent.
func spaceRows(rows []row, opts Options) []row {
	out := cloneRows(rows)
	if len(out) == 0 {
		return out
	}
	pad := opts.NodePadding

	anchor := 0
	for i, r := range out {
		if r.width(pad) > out[anchor].width(pad) {
			anchor = i
		}
	}
	total := float64(out[anchor].width(pad))

	cursor := 0.0
	for i := range out[anchor] {
		out[anchor][i].x = cursor
		cursor += float64(out[anchor][i].width + pad)
	}

	for k := anchor - 1; k >= 0; k-- {
		below, idx := out[k+1], out[k+1].index()
		placeRow(out[k], total, pad, func(n node) (float64, bool) {
			if n.leaf {
				return 0, false
			}
			first := below[idx[n.children[0]]]
			last := below[idx[n.children[len(n.children)-1]]]
			mid := (first.center() + last.center()) / 2
			return mid - float64(n.width)/2, true
		})
	}

	for k := anchor + 1; k < len(out); k++ {
		above, aidx := out[k-1], out[k-1].index()
		cur, cidx := out[k], out[k].index()
		placeRow(out[k], total, pad, func(n node) (float64, bool) {
			p := above[aidx[n.parent]]
			if p.children[0] != n.id {
				return 0, false
			}
			group := (len(p.children) - 1) * pad
			for _, id := range p.children {
				group += cur[cidx[id]].width
			}
			return p.center() - float64(group)/2, true
		})
	}
	return out
}

// placeRow positions r left to right. ideal returns a node's preferred left
// edge; nodes without one go at the cursor. A node never starts before the
// cursor and never so far right that the rest of the row would overflow total.
func placeRow(r row, total float64, pad int, ideal func(node) (float64, bool)) {
	used := 0.0
	rowWidth := float64(r.width(pad))
	cursor := 0.0
	for i := range r {
		w := float64(r[i].width)
		used += w
		if i > 0 {
			used += float64(pad)
		}
		rest := rowWidth - used

		x := cursor
		if want, ok := ideal(r[i]); ok {
			x = max(want, cursor)
		}
		x = min(x, total-w-rest)

		r[i].x = x
		cursor = x + w + float64(pad)
	}
}
