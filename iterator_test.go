package avl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"avl/internal/fixtures"
)

func TestIteratorBeginEndEmptyTree(t *testing.T) {
	tree := New[int]()

	assert.True(t, tree.Begin().Equal(tree.End()))
	assert.False(t, tree.Begin().Valid())
	assert.Equal(t, 0, tree.End().Index())
}

func TestIteratorSingleElement(t *testing.T) {
	tree := New(42)

	it := tree.Begin()
	assert.True(t, it.Valid())
	assert.Equal(t, 42, it.Key())

	it.Next()
	assert.True(t, it.Equal(tree.End()))
}

func TestIteratorNext(t *testing.T) {
	tree := New(1, 2, 3)
	it := tree.Begin()

	assert.Equal(t, 1, it.Key())
	it.Next()
	assert.Equal(t, 2, it.Key())
	it.Next()
	assert.Equal(t, 3, it.Key())
	it.Next()
	assert.True(t, it.Equal(tree.End()))
}

func TestIteratorPrev(t *testing.T) {
	tree := New(1, 3, 2)
	it := tree.End()

	it.Prev()
	assert.Equal(t, 3, it.Key())
	it.Prev()
	assert.Equal(t, 2, it.Key())
	it.Prev()
	assert.Equal(t, 1, it.Key())
	assert.True(t, it.Equal(tree.Begin()))
}

func TestIteratorFullCycles(t *testing.T) {
	keys := fixtures.LoadKeys("keys.txt")
	tree := New(keys...)

	forward := collect(tree)
	backward := collectReverse(tree)

	require.Len(t, forward, len(keys))
	require.Len(t, backward, len(keys))
	for i := range forward {
		assert.Equal(t, forward[i], backward[len(backward)-1-i])
		if i > 0 {
			assert.Less(t, forward[i-1], forward[i])
		}
	}
}

func TestIteratorIndex(t *testing.T) {
	tree := New(intRange(1, 1, 64)...)

	i := 0
	for it := tree.Begin(); it.Valid(); it.Next() {
		assert.Equal(t, i, it.Index())
		i++
	}
	assert.Equal(t, 64, tree.End().Index())
}

func TestIteratorDistance(t *testing.T) {
	tree := New(1, 2, 3, 4, 5)
	begin, end := tree.Begin(), tree.End()

	assert.Equal(t, 5, end.Sub(begin))
	assert.Equal(t, 5, Distance(begin, end))

	third := tree.Begin()
	third.Next()
	third.Next()
	assert.Equal(t, 2, third.Sub(begin))
	assert.Equal(t, 3, Distance(third, end))
	assert.Equal(t, 0, third.Sub(third))
}

func TestIteratorDistanceIsSigned(t *testing.T) {
	tree := New(1, 2, 3, 4, 5)

	assert.Equal(t, -5, tree.Begin().Sub(tree.End()))
	assert.Equal(t, -2, Distance(tree.Find(4), tree.Find(2)))
}

func TestIteratorEquality(t *testing.T) {
	tree := New(1, 2)
	it1, it2 := tree.Begin(), tree.Begin()

	assert.True(t, it1.Equal(it2))
	it1.Next()
	assert.False(t, it1.Equal(it2))
	it2.Next()
	assert.True(t, it1.Equal(it2))

	other := New(1, 2)
	assert.False(t, tree.Begin().Equal(other.Begin()))
	assert.False(t, tree.End().Equal(other.End()))
}

func TestIteratorKeyRef(t *testing.T) {
	tree := New(100)

	*tree.Begin().KeyRef() = 200

	assert.Equal(t, 200, tree.Begin().Key())
}

func TestIteratorSurvivesInsert(t *testing.T) {
	tree := New(10)
	it := tree.Begin()

	for i := 0; i < 100; i++ {
		tree.Insert(i)
	}

	assert.Equal(t, 10, it.Key())
	assert.Equal(t, 10, it.Index())
	assert.Equal(t, 0, tree.Begin().Key())
}

func TestIteratorInsertPosition(t *testing.T) {
	tree := New(1, 5, 9)

	it, inserted := tree.Insert(4)
	require.True(t, inserted)

	assert.Equal(t, 1, it.Index())
	it.Next()
	assert.Equal(t, 5, it.Key())
}

func TestIteratorNextOnEnd(t *testing.T) {
	tree := New(1, 2, 3)
	it := tree.End()

	msgs := expectViolation(t, it.Next)

	if !invariantsEnabled {
		assert.Contains(t, msgs[0], "Next called on End")
		assert.True(t, it.Equal(tree.End()))
	}
}

func TestIteratorPrevOnBegin(t *testing.T) {
	tree := New(1, 2, 3)
	it := tree.Begin()

	msgs := expectViolation(t, it.Prev)

	if !invariantsEnabled {
		assert.Contains(t, msgs[0], "Prev called on Begin")
		assert.True(t, it.Equal(tree.End()))
	}
}

func TestIteratorPrevOnEmptyTree(t *testing.T) {
	tree := New[int]()
	it := tree.End()

	expectViolation(t, it.Prev)
}

func TestIteratorKeyOnEndPanics(t *testing.T) {
	tree := New(1)

	assert.Panics(t, func() { tree.End().Key() })
}

func TestIteratorUseAfterClear(t *testing.T) {
	tree := New(1, 2, 3)
	it := tree.Begin()
	it.Next()

	tree.Clear()
	tree.Insert(7)
	tree.Insert(8)
	tree.Insert(9)

	msgs := expectViolation(t, func() { it.Index() })

	if !invariantsEnabled {
		assert.Contains(t, msgs[0], "used after Clear")
	}
	assert.NotPanics(t, func() { tree.Begin().Index() }, "fresh iterators stay usable")
}

func TestIteratorSubAcrossTrees(t *testing.T) {
	a, b := New(1), New(1)

	expectViolation(t, func() { a.End().Sub(b.Begin()) })
}
