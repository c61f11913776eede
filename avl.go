// Package avl implements an ordered set backed by an AVL tree whose nodes
// also track the size of their subtree. Positions in the set are exposed as
// bidirectional iterators, and the distance between two iterators is
// computed in O(log n) without walking the keys in between.
//
// The tree only grows. Clear empties it and invalidates every iterator that
// was handed out before.
//
// A Tree is not safe for concurrent use.
package avl

import "cmp"

// LessFunc - strict weak ordering over keys.
type LessFunc[K any] func(a, b K) bool

// Less returns the default LessFunc that orders keys with '<'.
func Less[K cmp.Ordered]() LessFunc[K] {
	return cmp.Less[K]
}

// Callback - callback function that is passed in Each.
// Returning false stops the walk.
type Callback[K any] func(key K) bool

// New creates a tree ordered by '<' and inserts keys into it.
func New[K cmp.Ordered](keys ...K) *Tree[K] {
	return NewWithLess(Less[K](), keys...)
}

// NewWithLess creates a tree ordered by less and inserts keys into it.
func NewWithLess[K any](less LessFunc[K], keys ...K) *Tree[K] {
	if less == nil {
		panic("avl: nil LessFunc")
	}
	t := &Tree[K]{
		arena: newArena[K](),
		less:  less,
	}
	for _, k := range keys {
		t.Insert(k)
	}
	return t
}
