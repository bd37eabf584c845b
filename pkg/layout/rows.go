package layout

import (
	"math"
	"slices"
	"unicode"
	"unicode/utf8"

	"github.com/alphapapa/graph.el/pkg/tree"
)

// node is a tree vertex flattened into a row. Every pass works on copies.
type node struct {
	id       int
	parent   int // -1 for roots
	children []int
	lines    []string
	leaf     bool

	x             float64 // left edge, possibly fractional until emission
	y             int
	width, height int

	// Connector to the children, set by connectRows and packRows.
	lineLeft, lineRight float64
	lineLevel           int
	lineY               int

	// Row of the parent's connector, set by propagateLines.
	parentLineY   int
	hasParentLine bool
}

// row is one tree depth, left to right in input order.
type row []node

func (n node) center() float64 {
	return n.x + float64(n.width)/2
}

// stemCol is the first column of the vertical stem through the node's centre.
func (n node) stemCol(lineWidth int) int {
	return col(n.center()) - lineWidth/2
}

// lineSpan returns the integer columns [x, x+w) of the node's connector.
func (n node) lineSpan(lineWidth int) (x, w int) {
	half := float64(lineWidth) / 2
	lo := col(n.lineLeft+half) - lineWidth/2
	hi := col(n.lineRight-half) - lineWidth/2 + lineWidth
	return lo, hi - lo
}

// col converts a layout coordinate to a grid column.
func col(v float64) int {
	return int(math.Floor(v))
}

// buildRows flattens forest breadth first. Row 0 holds the roots.
func buildRows(forest []tree.Node, opts Options) []row {
	type item struct {
		n      tree.Node
		parent int
	}

	level := make([]item, len(forest))
	for i, root := range tree.Number(forest) {
		level[i] = item{n: root, parent: -1}
	}

	var rows []row
	for len(level) > 0 {
		r := make(row, 0, len(level))
		var next []item
		for _, it := range level {
			r = append(r, newNode(it.n, it.parent, opts.WrapThreshold))
			for _, c := range it.n.Children {
				next = append(next, item{n: c, parent: it.n.ID})
			}
		}
		rows = append(rows, r)
		level = next
	}
	return rows
}

func newNode(t tree.Node, parent, threshold int) node {
	text := t.Text()
	n := node{
		id:     t.ID,
		parent: parent,
		lines:  wrap(text, threshold),
		leaf:   t.IsLeaf(),
		width:  min(utf8.RuneCountInString(text), threshold) + 4,
	}
	n.height = len(n.lines) + 2
	for _, c := range t.Children {
		n.children = append(n.children, c.ID)
	}
	return n
}

// wrap splits text into lines of at most threshold runes, preferring to break
// at the last whitespace within reach. The whitespace at a break is dropped. Every line
// gets a single leading space of padding.
func wrap(text string, threshold int) []string {
	r := []rune(text)
	var lines []string
	for len(r) > threshold {
		cut := -1
		for i := threshold; i > 0; i-- {
			if unicode.IsSpace(r[i]) {
				cut = i
				break
			}
		}
		if cut > 0 {
			lines = append(lines, string(r[:cut]))
			r = r[cut+1:]
		} else {
			lines = append(lines, string(r[:threshold]))
			r = r[threshold:]
		}
	}
	if len(r) > 0 || len(lines) == 0 {
		lines = append(lines, string(r))
	}
	for i, l := range lines {
		lines[i] = " " + l
	}
	return lines
}

func cloneRows(rows []row) []row {
	out := make([]row, len(rows))
	for i, r := range rows {
		out[i] = slices.Clone(r)
	}
	return out
}

// index maps node ids to their position in r.
func (r row) index() map[int]int {
	m := make(map[int]int, len(r))
	for i, n := range r {
		m[n.id] = i
	}
	return m
}

// width returns the packed width of r: boxes plus padding between them.
func (r row) width(pad int) int {
	if len(r) == 0 {
		return 0
	}
	w := (len(r) - 1) * pad
	for _, n := range r {
		w += n.width
	}
	return w
}
