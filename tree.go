package avl

// Tree - AVL tree with subtree sizes. Create one with New or NewWithLess;
// the zero Tree is not usable.
type Tree[K any] struct {
	arena arena[K]
	root  nodeIndex
	less  LessFunc[K]

	// generation changes on every Clear so stale iterators can be caught.
	generation uint64
}

// Insert inserts key into the tree. It returns the position of key and
// whether a new node was created; inserting a key that is already present
// leaves the tree untouched.
func (t *Tree[K]) Insert(key K) (Iterator[K], bool) {
	root, at, inserted := t.insertHelper(t.root, key)
	t.root = root
	if inserted && invariantsEnabled {
		if err := t.Verify(); err != nil {
			panic(err)
		}
	}
	return t.iterator(at), inserted
}

// insertHelper is a helper function for Insert. It returns the new root of
// the subtree, the node holding key, and whether that node was created.
func (t *Tree[K]) insertHelper(current nodeIndex, key K) (nodeIndex, nodeIndex, bool) {
	if current == nilIndex {
		n := t.arena.allocate(key)
		return n, n, true
	}

	var dir side
	switch currentKey := t.arena.get(current).key; {
	case t.less(currentKey, key):
		dir = right
	case t.less(key, currentKey):
		dir = left
	default:
		return current, current, false
	}

	// The recursive call may grow the arena, so nothing obtained from
	// get above is reused below.
	child, at, inserted := t.insertHelper(t.arena.get(current).child[dir], key)
	if !inserted {
		return current, at, false
	}
	t.setChild(current, dir, child)
	return t.balance(current), at, true
}

// balance restores the AVL property at n after one of its subtrees grew by
// one level, and returns the root of the rebalanced subtree.
func (t *Tree[K]) balance(n nodeIndex) nodeIndex {
	b := t.balanceFactor(n)
	if b >= -1 && b <= 1 {
		return n
	}
	assertf(b == 2 || b == -2, "node %d has balance factor %d", n, b)

	heavy := left
	if b > 0 {
		heavy = right
	}
	// Inner grandchild is the taller one: straighten the heavy child first.
	if c := t.arena.get(n).child[heavy]; t.balanceFactor(c)*heavy.sign() < 0 {
		t.setChild(n, heavy, t.rotate(c, heavy))
	}
	return t.rotate(n, heavy.opposite())
}

// rotate lifts the child of n opposite to dir into n's place and returns
// it. rotate(n, left) is a left rotation.
func (t *Tree[K]) rotate(n nodeIndex, dir side) nodeIndex {
	pivot := t.arena.get(n).child[dir.opposite()]
	assertf(pivot != nilIndex, "%s rotation of node %d without a %s child", dir, n, dir.opposite())

	t.setChild(n, dir.opposite(), t.arena.get(pivot).child[dir])
	t.setChild(pivot, dir, n)
	return pivot
}

// setChild attaches child under parent on side s and refreshes parent's
// height and size. parent is detached from its own parent until the caller
// attaches it again.
func (t *Tree[K]) setChild(parent nodeIndex, s side, child nodeIndex) {
	p := t.arena.get(parent)
	p.child[s] = child
	p.parent = nilIndex
	if child != nilIndex {
		t.arena.get(child).parent = parent
	}
	t.recompute(parent)
}

// recompute derives the height and size of n from its children.
func (t *Tree[K]) recompute(n nodeIndex) {
	nd := t.arena.get(n)
	l, r := nd.child[left], nd.child[right]
	nd.height = max(t.height(l), t.height(r)) + 1
	nd.size = t.size(l) + t.size(r) + 1
}

// balanceFactor returns height(right) - height(left) of n.
func (t *Tree[K]) balanceFactor(n nodeIndex) int8 {
	nd := t.arena.get(n)
	return t.height(nd.child[right]) - t.height(nd.child[left])
}

// height returns the height of the subtree rooted at n, 0 for nil.
func (t *Tree[K]) height(n nodeIndex) int8 {
	if n == nilIndex {
		return 0
	}
	return t.arena.get(n).height
}

// size returns the number of nodes in the subtree rooted at n, 0 for nil.
func (t *Tree[K]) size(n nodeIndex) int {
	if n == nilIndex {
		return 0
	}
	return t.arena.get(n).size
}

// Find returns the position of key, or End if key is not in the tree.
func (t *Tree[K]) Find(key K) Iterator[K] {
	current := t.root
	for current != nilIndex {
		nd := t.arena.get(current)
		switch {
		case t.less(nd.key, key):
			current = nd.child[right]
		case t.less(key, nd.key):
			current = nd.child[left]
		default:
			return t.iterator(current)
		}
	}
	return t.End()
}

// Has reports whether key is in the tree.
func (t *Tree[K]) Has(key K) bool {
	return t.Find(key).node != nilIndex
}

// Clear removes every key. Iterators obtained before Clear must not be
// used again; doing so is reported through assertf.
func (t *Tree[K]) Clear() {
	t.arena.reset()
	t.root = nilIndex
	t.generation++
}

// Len returns the number of keys in the tree.
func (t *Tree[K]) Len() int {
	return t.size(t.root)
}

// Height returns the height of the tree, 0 when empty.
func (t *Tree[K]) Height() int {
	return int(t.height(t.root))
}

// Each walks the keys in order and calls callback for each one until it
// returns false.
func (t *Tree[K]) Each(callback Callback[K]) {
	t.eachHelper(t.root, callback)
}

// eachHelper is a helper function of Each.
func (t *Tree[K]) eachHelper(current nodeIndex, callback Callback[K]) bool {
	if current == nilIndex {
		return true
	}
	nd := t.arena.get(current)
	l, r := nd.child[left], nd.child[right]
	return t.eachHelper(l, callback) &&
		callback(t.arena.get(current).key) &&
		t.eachHelper(r, callback)
}

// Keys returns all keys in order.
func (t *Tree[K]) Keys() []K {
	keys := make([]K, 0, t.Len())
	t.Each(func(key K) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}
