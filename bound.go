package avl

// LowerBound returns the first position whose key does not order before
// key, or End if there is none.
func (t *Tree[K]) LowerBound(key K) Iterator[K] {
	return t.iterator(t.findAfter(key, false))
}

// UpperBound returns the first position whose key orders after key, or End
// if there is none.
func (t *Tree[K]) UpperBound(key K) Iterator[K] {
	return t.iterator(t.findAfter(key, true))
}

// CountRange returns the number of keys k with low <= k <= high under the
// tree's ordering. It is 0 when high orders before low.
func (t *Tree[K]) CountRange(low, high K) int {
	return max(Distance(t.LowerBound(low), t.UpperBound(high)), 0)
}

// findAfter descends once from the root and returns the leftmost node whose
// key orders after key. Unless skipEqual is set, a node equal to key is
// returned as soon as it is met.
func (t *Tree[K]) findAfter(key K, skipEqual bool) nodeIndex {
	candidate := nilIndex
	current := t.root
	for current != nilIndex {
		nd := t.arena.get(current)
		if t.less(key, nd.key) {
			candidate = current
			current = nd.child[left]
			continue
		}
		if !skipEqual && !t.less(nd.key, key) {
			return current
		}
		current = nd.child[right]
	}
	return candidate
}
