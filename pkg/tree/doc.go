// Package tree defines the input trees laid out by graphel.
//
// A diagram is drawn from a forest: a list of root [Node] values, each with an
// ordered list of children. Labels are either literal text or symbolic tokens
// whose dashes read as spaces ("parse-input" is shown as "parse input").
//
// [Number] assigns every node a stable integer id in pre-order, so a parent's
// id is always smaller than the ids of its descendants. Layout code relies on
// these ids to map rows back to the input order.
//
//	forest := []tree.Node{
//	    tree.New("A", tree.New("B"), tree.New("C")),
//	}
//	numbered := tree.Number(forest) // A=0, B=1, C=2
//
// Trees are plain values. Nothing in this package keeps state between calls.
package tree
