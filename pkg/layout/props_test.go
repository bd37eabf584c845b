package layout

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/alphapapa/graph.el/pkg/render"
	"github.com/alphapapa/graph.el/pkg/tree"
)

const labelRunes = "abcdefghijklmnopqrstuvwxyz      "

func randomLabel(rng *rand.Rand) string {
	n := 1 + rng.Intn(24)
	b := make([]byte, n)
	for i := range b {
		b[i] = labelRunes[rng.Intn(len(labelRunes))]
	}
	b[0] = 'x'
	return string(b)
}

func randomTree(rng *rand.Rand, depth int) tree.Node {
	var children []tree.Node
	if depth > 0 {
		for range rng.Intn(6) {
			children = append(children, randomTree(rng, depth-1))
		}
	}
	return tree.New(randomLabel(rng), children...)
}

func randomForest(rng *rand.Rand) []tree.Node {
	forest := make([]tree.Node, 1+rng.Intn(3))
	for i := range forest {
		forest[i] = randomTree(rng, rng.Intn(5))
	}
	return forest
}

func randomOptions(rng *rand.Rand) Options {
	opts := DefaultOptions()
	if rng.Intn(2) == 0 {
		return opts
	}
	opts.WrapThreshold = 3 + rng.Intn(12)
	opts.NodePadding = rng.Intn(3)
	opts.RowPadding = rng.Intn(9)
	opts.LineWidth = 1 + rng.Intn(3)
	opts.LinePadding = rng.Intn(3)
	opts.Arrows = rng.Intn(2) == 0
	return opts
}

func TestLayoutRandomForests(t *testing.T) {
	rng := rand.New(rand.NewSource(20240611))
	iterations := 3000
	if testing.Short() {
		iterations = 300
	}

	for it := range iterations {
		forest := randomForest(rng)
		opts := randomOptions(rng)
		shapes := Layout(forest, opts)
		bs := boxes(shapes)

		if len(bs) != tree.Count(forest) {
			t.Fatalf("it %d: got %d boxes, want %d", it, len(bs), tree.Count(forest))
		}
		for i := range bs {
			for j := i + 1; j < len(bs); j++ {
				if bs[i].Overlaps(bs[j]) {
					t.Fatalf("it %d: boxes %+v and %+v overlap", it, bs[i], bs[j])
				}
			}
		}
		for _, s := range shapes {
			if s.Kind == render.KindBox && len(s.Text) > 0 {
				continue
			}
			for _, b := range bs {
				if s.Overlaps(b) {
					t.Fatalf("it %d: connector %+v crosses box %+v", it, s, b)
				}
			}
		}

		out := render.Text(shapes)
		lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
		for i, l := range lines {
			if len([]rune(l)) != len([]rune(lines[0])) {
				t.Fatalf("it %d: line %d has width %d, want %d", it, i, len([]rune(l)), len([]rune(lines[0])))
			}
		}

		_, h := render.Extent(shapes)
		if naive := NaiveHeight(forest, opts); h > naive {
			t.Fatalf("it %d: height %d exceeds naive height %d with %+v\n%s", it, h, naive, opts, out)
		}
	}
}

func TestNaiveHeightCoversStackedConnectors(t *testing.T) {
	// Five parents whose children spill far to the right, so their connectors
	// overlap and stack below the parent row.
	var parents []tree.Node
	for range 5 {
		parents = append(parents, tree.New("p",
			tree.New("a child label"), tree.New("a child label"), tree.New("a child label")))
	}
	forest := []tree.Node{tree.New("root", parents...)}

	opts := DefaultOptions()
	opts.RowPadding = 0
	_, h := render.Extent(Layout(forest, opts))
	if naive := NaiveHeight(forest, opts); h > naive {
		t.Errorf("height %d exceeds naive height %d", h, naive)
	}
}
