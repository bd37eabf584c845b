package tree

import (
	"fmt"
	"strings"

	"github.com/alphapapa/graph.el/pkg/errors"
)

// Node is one labelled vertex of an input tree.
type Node struct {
	Label    string
	Symbol   bool // Label is a symbolic token; '-' displays as ' '
	Children []Node
	ID       int // set by Number
}

// New returns a literal-labelled node with the given children.
func New(label string, children ...Node) Node {
	return Node{Label: label, Children: children}
}

// Sym returns a symbol-labelled node with the given children.
func Sym(token string, children ...Node) Node {
	return Node{Label: token, Symbol: true, Children: children}
}

// Text returns the label as displayed.
func (n Node) Text() string {
	if n.Symbol {
		return strings.ReplaceAll(n.Label, "-", " ")
	}
	return n.Label
}

// IsLeaf reports whether the node has no children.
func (n Node) IsLeaf() bool { return len(n.Children) == 0 }

// Number returns a copy of forest with IDs assigned in pre-order, depth first,
// starting at 0 with the first root.
func Number(forest []Node) []Node {
	next := 0
	var walk func(n Node) Node
	walk = func(n Node) Node {
		n.ID = next
		next++
		if len(n.Children) > 0 {
			kids := make([]Node, len(n.Children))
			for i, c := range n.Children {
				kids[i] = walk(c)
			}
			n.Children = kids
		}
		return n
	}

	out := make([]Node, len(forest))
	for i, root := range forest {
		out[i] = walk(root)
	}
	return out
}

// Count returns the number of nodes in forest.
func Count(forest []Node) int {
	n := 0
	for _, root := range forest {
		n += 1 + Count(root.Children)
	}
	return n
}

// Depth returns the number of levels in forest; 0 for an empty forest.
func Depth(forest []Node) int {
	d := 0
	for _, root := range forest {
		d = max(d, 1+Depth(root.Children))
	}
	return d
}

// Validate checks that forest is non-empty and every label is drawable.
func Validate(forest []Node) error {
	if len(forest) == 0 {
		return errors.New(errors.ErrCodeInvalidTree, "tree is empty")
	}
	var walk func(path string, n Node) error
	walk = func(path string, n Node) error {
		if err := errors.ValidateLabel(n.Label); err != nil {
			return fmt.Errorf("node %s: %w", path, err)
		}
		for i, c := range n.Children {
			if err := walk(fmt.Sprintf("%s.%d", path, i), c); err != nil {
				return err
			}
		}
		return nil
	}
	for i, root := range forest {
		if err := walk(fmt.Sprint(i), root); err != nil {
			return err
		}
	}
	return nil
}
