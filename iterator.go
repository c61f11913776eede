package avl

// Iterator - position in a Tree: either a node or End.
//
// Iterators stay valid across Insert (nodes never move) and become stale
// after Clear. The zero Iterator belongs to no tree and must not be used.
type Iterator[K any] struct {
	tree       *Tree[K]
	node       nodeIndex
	generation uint64
}

// iterator returns an iterator positioned at n.
func (t *Tree[K]) iterator(n nodeIndex) Iterator[K] {
	return Iterator[K]{tree: t, node: n, generation: t.generation}
}

// Begin returns the position of the smallest key, or End if the tree is
// empty.
func (t *Tree[K]) Begin() Iterator[K] {
	return t.iterator(t.extreme(t.root, left))
}

// End returns the position one past the largest key.
func (t *Tree[K]) End() Iterator[K] {
	return t.iterator(nilIndex)
}

// extreme follows s links from n down to the last node, nil for nil.
func (t *Tree[K]) extreme(n nodeIndex, s side) nodeIndex {
	if n == nilIndex {
		return nilIndex
	}
	for {
		next := t.arena.get(n).child[s]
		if next == nilIndex {
			return n
		}
		n = next
	}
}

// Valid reports whether it points at a key, i.e. is not End.
func (it Iterator[K]) Valid() bool {
	return it.node != nilIndex
}

// Key returns the key at it. Calling Key on End panics.
func (it Iterator[K]) Key() K {
	it.checkFresh()
	return it.tree.arena.get(it.node).key
}

// KeyRef returns a pointer to the key stored at it. Changing the key so
// that it orders differently relative to its neighbours corrupts the tree.
func (it Iterator[K]) KeyRef() *K {
	it.checkFresh()
	return &it.tree.arena.get(it.node).key
}

// Next moves it to the following key, or to End after the largest one.
// Calling Next on End is a contract violation.
func (it *Iterator[K]) Next() {
	it.checkFresh()
	if it.node == nilIndex {
		assertf(false, "Next called on End iterator")
		return
	}
	it.node = it.tree.advance(it.node, right)
}

// Prev moves it to the preceding key. Prev on End moves to the largest
// key. Calling Prev on Begin is a contract violation.
func (it *Iterator[K]) Prev() {
	it.checkFresh()
	if it.node == nilIndex {
		it.node = it.tree.extreme(it.tree.root, right)
		assertf(it.node != nilIndex, "Prev called on Begin iterator of an empty tree")
		return
	}
	it.node = it.tree.advance(it.node, left)
	assertf(it.node != nilIndex, "Prev called on Begin iterator")
}

// advance returns the in-order neighbour of n in direction dir (right for
// the successor), nil when n is the last node that way.
func (t *Tree[K]) advance(n nodeIndex, dir side) nodeIndex {
	if far := t.arena.get(n).child[dir]; far != nilIndex {
		return t.extreme(far, dir.opposite())
	}
	parent := t.arena.get(n).parent
	for parent != nilIndex && t.arena.get(parent).child[dir] == n {
		n = parent
		parent = t.arena.get(n).parent
	}
	return parent
}

// Index returns the zero-based in-order position of it, which is the
// number of keys ordered before it. End has index Len().
func (it Iterator[K]) Index() int {
	it.checkFresh()
	if it.node == nilIndex {
		return it.tree.Len()
	}
	return it.tree.rank(it.node) - 1
}

// rank returns the number of keys ordered before or equal to the key
// at n by walking from n up to the root.
func (t *Tree[K]) rank(n nodeIndex) int {
	count := 0
	fromLeft := false
	for n != nilIndex {
		nd := t.arena.get(n)
		if !fromLeft {
			count += t.size(nd.child[left]) + 1
		}
		parent := nd.parent
		fromLeft = parent != nilIndex && t.arena.get(parent).child[left] == n
		n = parent
	}
	return count
}

// Sub returns it.Index() - other.Index(). The result is negative when it
// is positioned before other. Both iterators must belong to the same tree.
func (it Iterator[K]) Sub(other Iterator[K]) int {
	assertf(it.tree == other.tree, "Sub of iterators from different trees")
	return it.Index() - other.Index()
}

// Distance returns the number of Next calls needed to move from to to,
// negative when to is positioned before from.
func Distance[K any](from, to Iterator[K]) int {
	return to.Sub(from)
}

// Equal reports whether both iterators belong to the same tree and point
// at the same node. Two End iterators of one tree are equal.
func (it Iterator[K]) Equal(other Iterator[K]) bool {
	return it.tree == other.tree && it.node == other.node
}

// checkFresh reports an iterator that outlived a Clear of its tree.
func (it Iterator[K]) checkFresh() {
	assertf(it.tree != nil, "use of zero Iterator")
	assertf(it.tree == nil || it.generation == it.tree.generation,
		"iterator from generation %d used after Clear (tree generation %d)",
		it.generation, it.tree.generationOrZero())
}

// generationOrZero is the tree generation, 0 for a nil tree.
func (t *Tree[K]) generationOrZero() uint64 {
	if t == nil {
		return 0
	}
	return t.generation
}
