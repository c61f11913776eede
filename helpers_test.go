package avl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// expectViolation runs fn, which must break an iterator or tree contract,
// and returns the messages logged for it. Under avlinvariants fn must panic
// instead and no messages are returned.
func expectViolation(t *testing.T, fn func()) []string {
	t.Helper()
	if invariantsEnabled {
		assert.Panics(t, fn)
		return nil
	}

	core, logs := observer.New(zap.ErrorLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	fn()

	var msgs []string
	for _, e := range logs.All() {
		msgs = append(msgs, e.Message)
	}
	assert.NotEmpty(t, msgs, "expected a logged contract violation")
	return msgs
}

// collect returns the keys from Begin to End.
func collect[K any](tree *Tree[K]) []K {
	var keys []K
	for it := tree.Begin(); !it.Equal(tree.End()); it.Next() {
		keys = append(keys, it.Key())
	}
	return keys
}

// collectReverse returns the keys from End back to Begin.
func collectReverse[K any](tree *Tree[K]) []K {
	var keys []K
	it := tree.End()
	for !it.Equal(tree.Begin()) {
		it.Prev()
		keys = append(keys, it.Key())
	}
	return keys
}

// intRange returns from, from+step, ... n values.
func intRange(from, step, n int) []int {
	keys := make([]int, n)
	for i := range keys {
		keys[i] = from + i*step
	}
	return keys
}
