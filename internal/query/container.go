// Package query runs range-count workloads against an ordered container.
//
// A workload is a stream of whitespace separated tokens:
//
//	k <key>          insert key
//	q <low> <high>   print how many keys lie in [low, high]
package query

import (
	"github.com/google/btree"

	"avl"
)

// Container is the ordered set a Runner drives.
type Container interface {
	Insert(key int64)
	CountRange(low, high int64) int
}

// AVL adapts avl.Tree to Container. Counts come from rank arithmetic.
type AVL struct {
	Tree *avl.Tree[int64]
}

// NewAVL returns an empty AVL container.
func NewAVL() *AVL {
	return &AVL{Tree: avl.New[int64]()}
}

// Insert inserts key; duplicates are ignored.
func (a *AVL) Insert(key int64) {
	a.Tree.Insert(key)
}

// CountRange returns the number of keys in [low, high].
func (a *AVL) CountRange(low, high int64) int {
	return a.Tree.CountRange(low, high)
}

// btreeDegree is the branching factor of the reference engine.
const btreeDegree = 32

// BTree is the reference engine. It counts by visiting every key in the
// range, so a query costs O(log n + answer).
type BTree struct {
	tree *btree.BTreeG[int64]
}

// NewBTree returns an empty BTree container.
func NewBTree() *BTree {
	return &BTree{tree: btree.NewOrderedG[int64](btreeDegree)}
}

// Insert inserts key; duplicates are ignored.
func (b *BTree) Insert(key int64) {
	b.tree.ReplaceOrInsert(key)
}

// CountRange returns the number of keys in [low, high].
func (b *BTree) CountRange(low, high int64) int {
	n := 0
	b.tree.AscendGreaterOrEqual(low, func(k int64) bool {
		if k > high {
			return false
		}
		n++
		return true
	})
	return n
}

// Engines lists the containers selectable by name.
var Engines = map[string]func() Container{
	"avl":   func() Container { return NewAVL() },
	"btree": func() Container { return NewBTree() },
}
