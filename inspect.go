package avl

import (
	"errors"
	"fmt"
)

// ErrInvariant is wrapped by every error returned from Verify.
var ErrInvariant = errors.New("avl: invariant violated")

// NodeID identifies a node for read-only inspection. The zero NodeID is
// the absent node.
type NodeID uint32

// IsNil reports whether id stands for no node.
func (id NodeID) IsNil() bool { return id == 0 }

// NodeInfo is a snapshot of one node's fields.
type NodeInfo[K any] struct {
	ID     NodeID
	Key    K
	Height int
	Size   int
	Left   NodeID
	Right  NodeID
	Parent NodeID
}

// Root returns the id of the root node, nil when the tree is empty.
func (t *Tree[K]) Root() NodeID {
	return NodeID(t.root)
}

// Node returns a snapshot of node id. It panics if id is nil or does not
// belong to the tree.
func (t *Tree[K]) Node(id NodeID) NodeInfo[K] {
	nd := t.arena.get(nodeIndex(id))
	return NodeInfo[K]{
		ID:     id,
		Key:    nd.key,
		Height: int(nd.height),
		Size:   nd.size,
		Left:   NodeID(nd.child[left]),
		Right:  NodeID(nd.child[right]),
		Parent: NodeID(nd.parent),
	}
}

// Verify checks key order, AVL balance, heights, subtree sizes and parent
// links of every node and reports the first violation found.
func (t *Tree[K]) Verify() error {
	if t.root != nilIndex {
		if p := t.arena.get(t.root).parent; p != nilIndex {
			return fmt.Errorf("%w: root %d has parent %d", ErrInvariant, t.root, p)
		}
	}
	if _, err := t.verifyHelper(t.root, nil, nil); err != nil {
		return err
	}
	if n := t.Len(); n != t.arena.len() {
		return fmt.Errorf("%w: %d nodes reachable, %d allocated", ErrInvariant, n, t.arena.len())
	}
	return nil
}

// verifyHelper is a helper function of Verify. lo and hi, when set, are the
// exclusive key bounds inherited from the ancestors of n.
func (t *Tree[K]) verifyHelper(n nodeIndex, lo, hi *K) (int8, error) {
	if n == nilIndex {
		return 0, nil
	}
	nd := t.arena.get(n)
	if lo != nil && !t.less(*lo, nd.key) {
		return 0, fmt.Errorf("%w: node %d key %v not after %v", ErrInvariant, n, nd.key, *lo)
	}
	if hi != nil && !t.less(nd.key, *hi) {
		return 0, fmt.Errorf("%w: node %d key %v not before %v", ErrInvariant, n, nd.key, *hi)
	}

	for _, s := range [...]side{left, right} {
		if c := nd.child[s]; c != nilIndex && t.arena.get(c).parent != n {
			return 0, fmt.Errorf("%w: %s child %d of node %d has parent %d",
				ErrInvariant, s, c, n, t.arena.get(c).parent)
		}
	}

	lh, err := t.verifyHelper(nd.child[left], lo, &nd.key)
	if err != nil {
		return 0, err
	}
	rh, err := t.verifyHelper(nd.child[right], &nd.key, hi)
	if err != nil {
		return 0, err
	}

	if d := rh - lh; d < -1 || d > 1 {
		return 0, fmt.Errorf("%w: node %d has balance factor %d", ErrInvariant, n, d)
	}
	if h := max(lh, rh) + 1; nd.height != h {
		return 0, fmt.Errorf("%w: node %d has height %d, want %d", ErrInvariant, n, nd.height, h)
	}
	if s := t.size(nd.child[left]) + t.size(nd.child[right]) + 1; nd.size != s {
		return 0, fmt.Errorf("%w: node %d has size %d, want %d", ErrInvariant, n, nd.size, s)
	}
	return nd.height, nil
}
