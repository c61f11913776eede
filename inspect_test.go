package avl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeInfo(t *testing.T) {
	tree := New(2, 1, 3)

	root := tree.Node(tree.Root())
	assert.Equal(t, NodeInfo[int]{
		ID: 1, Key: 2, Height: 2, Size: 3, Left: 2, Right: 3,
	}, root)

	leaf := tree.Node(root.Right)
	assert.Equal(t, 3, leaf.Key)
	assert.Equal(t, NodeID(1), leaf.Parent)
	assert.True(t, leaf.Left.IsNil())
	assert.True(t, leaf.Right.IsNil())

	assert.Panics(t, func() { tree.Node(0) })
}

func TestVerifyDetectsCorruption(t *testing.T) {
	var testData = []struct {
		name    string
		corrupt func(tree *Tree[int])
		want    string
	}{
		{"height", func(tree *Tree[int]) { tree.arena.get(tree.root).height = 5 }, "height"},
		{"size", func(tree *Tree[int]) { tree.arena.get(tree.root).size = 9 }, "size"},
		{"parent", func(tree *Tree[int]) {
			tree.arena.get(tree.arena.get(tree.root).child[left]).parent = nilIndex
		}, "parent"},
		{"root parent", func(tree *Tree[int]) { tree.arena.get(tree.root).parent = 3 }, "root"},
		{"order", func(tree *Tree[int]) {
			*tree.Begin().KeyRef() = 100
		}, "not before"},
		{"balance", func(tree *Tree[int]) {
			// Hang a two-node chain off the rightmost leaf.
			last := tree.extreme(tree.root, right)
			a := tree.arena.allocate(10)
			b := tree.arena.allocate(11)
			tree.arena.get(a).child[right] = b
			tree.arena.get(b).parent = a
			tree.recompute(a)
			tree.arena.get(last).child[right] = a
			tree.arena.get(a).parent = last
			for n := last; n != nilIndex; n = tree.arena.get(n).parent {
				tree.recompute(n)
			}
		}, "balance factor"},
		{"unreachable", func(tree *Tree[int]) { tree.arena.allocate(50) }, "allocated"},
	}

	for _, data := range testData {
		t.Run(data.name, func(t *testing.T) {
			tree := New(2, 1, 3, 4)
			require.NoError(t, tree.Verify())

			data.corrupt(tree)

			err := tree.Verify()
			assert.ErrorIs(t, err, ErrInvariant)
			assert.ErrorContains(t, err, data.want)
		})
	}
}
