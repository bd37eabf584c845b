package layout

import "math"

// connectRows spans each parent's connector over its own centre and the
// centres of its children, then assigns levels. Scanning a row left to right,
// a connector that starts within LinePadding of the current group's right end
// flips to the other level and joins the group; otherwise it starts a new
// group at level 0.
func connectRows(rows []row, opts Options) []row {
	out := cloneRows(rows)
	half := float64(opts.LineWidth) / 2
	pad := float64(opts.LinePadding)

	for k := range out {
		var below row
		var idx map[int]int
		if k+1 < len(out) {
			below, idx = out[k+1], out[k+1].index()
		}

		level := 0
		groupRight := math.Inf(-1)
		for i := range out[k] {
			n := &out[k][i]
			if n.leaf {
				continue
			}
			lo, hi := n.center(), n.center()
			for _, id := range n.children {
				c := below[idx[id]].center()
				lo, hi = min(lo, c), max(hi, c)
			}
			n.lineLeft, n.lineRight = lo-half, hi+half

			if n.lineLeft < groupRight+pad {
				level = 1 - level
				groupRight = max(groupRight, n.lineRight)
			} else {
				level = 0
				groupRight = n.lineRight
			}
			n.lineLevel = level
		}
	}
	return out
}
