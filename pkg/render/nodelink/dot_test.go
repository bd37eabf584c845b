package nodelink

import (
	"strings"
	"testing"

	"github.com/alphapapa/graph.el/pkg/tree"
)

func TestToDOT(t *testing.T) {
	forest := []tree.Node{
		tree.New("A", tree.New("B"), tree.Sym("c-d")),
		tree.New("E"),
	}
	got := ToDOT(forest, Options{})

	want := "digraph G {\n" +
		"  rankdir=TB;\n" +
		"  node [shape=box, fontname=\"monospace\"];\n" +
		"  ordering=out;\n" +
		"  n0 [label=\"A\"];\n" +
		"  n1 [label=\"B\"];\n" +
		"  n2 [label=\"c d\"];\n" +
		"  n3 [label=\"E\"];\n" +
		"\n" +
		"  n0 -> n1;\n" +
		"  n0 -> n2;\n" +
		"}\n"
	if got != want {
		t.Errorf("ToDOT() =\n%s\nwant\n%s", got, want)
	}
}

func TestToDOTDetailed(t *testing.T) {
	got := ToDOT([]tree.Node{tree.New("A", tree.New("B"))}, Options{Detailed: true})
	if !strings.Contains(got, `n1 [label="B\n#1"]`) {
		t.Errorf("detailed label missing id:\n%s", got)
	}
}

func TestToDOTQuotesLabels(t *testing.T) {
	got := ToDOT([]tree.Node{tree.New(`say "hi"`)}, Options{})
	if !strings.Contains(got, `n0 [label="say \"hi\""];`) {
		t.Errorf("label not escaped:\n%s", got)
	}
	if strings.Contains(got, "->") {
		t.Errorf("single node should have no edges:\n%s", got)
	}
}
