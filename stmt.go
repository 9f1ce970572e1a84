package lumina

import (
	"github.com/danswartzendruber/avl"
)

//
// A set of wrapper routines around the AVL package, the same role
// the teacher's stmt.go plays for its statement-number tree.  Here
// the ordered key is a variable's line-expiration rather than a
// statement number: Context.sweepExpirations (context.go) needs,
// every statement, "every name whose expiry line is <= current_line",
// and an in-order walk from the smallest key answers that in time
// bounded by how many names are actually due, rather than scanning
// every scheduled expiration in the program
//

type expiryNode struct {
	avl   avl.AvlNode
	line  uint64
	names map[string]bool
}

type lineExpiryIndex struct {
	root *avl.AvlNode
}

func newLineExpiryIndex() *lineExpiryIndex {
	return &lineExpiryIndex{root: nil}
}

func (idx *lineExpiryIndex) lookup(line uint64) *expiryNode {

	p := avl.AvlTreeLookup(idx.root, line, cmpUint64Key)
	if p == nil {
		return nil
	}

	return p.(*expiryNode)
}

func (idx *lineExpiryIndex) insert(line uint64, name string) {

	if node := idx.lookup(line); node != nil {
		node.names[name] = true
		return
	}

	node := &expiryNode{line: line, names: map[string]bool{name: true}}

	p := avl.AvlTreeInsert(&idx.root, &node.avl, node, cmpUint64Snode)
	luminaAssert(p == nil, "line %d already present in expiry index", line)
}

func (idx *lineExpiryIndex) remove(line uint64, name string) {

	node := idx.lookup(line)
	if node == nil {
		return
	}

	delete(node.names, name)

	if len(node.names) == 0 {
		avl.AvlTreeRemove(&idx.root, &node.avl)
	}
}

// sweep removes and returns every name scheduled at or before
// currentLine, walking the tree in ascending order so it stops as
// soon as it reaches a line past currentLine
func (idx *lineExpiryIndex) sweep(currentLine uint64) []string {

	var due []string

	for {
		p := avl.AvlTreeFirstInOrder(idx.root)
		if p == nil {
			break
		}

		node := p.(*expiryNode)
		if node.line > currentLine {
			break
		}

		for name := range node.names {
			due = append(due, name)
		}

		avl.AvlTreeRemove(&idx.root, &node.avl)
	}

	return due
}

func cmpUint64Snode(node1, node2 any) int {
	return cmpUint64Items(node1.(*expiryNode).line, node2.(*expiryNode).line)
}

func cmpUint64Key(key any, node any) int {
	return cmpUint64Items(key.(uint64), node.(*expiryNode).line)
}

func cmpUint64Items(a, b uint64) int {

	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
