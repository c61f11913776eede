package avl

import "fmt"

// nodeIndex addresses a node inside the arena.
type nodeIndex uint32

// nilIndex is the reserved slot standing for "no node".
const nilIndex nodeIndex = 0

// side selects a child link.
type side uint8

const (
	left side = iota
	right
)

// opposite returns the other side.
func (s side) opposite() side { return s ^ 1 }

// sign is -1 for left and +1 for right, matching the sign of balance().
func (s side) sign() int8 {
	if s == right {
		return 1
	}
	return -1
}

func (s side) String() string {
	if s == left {
		return "left"
	}
	return "right"
}

// node is a single tree node. Links are arena indexes, never pointers.
type node[K any] struct {
	key    K
	child  [2]nodeIndex
	parent nodeIndex
	height int8
	size   int
}

// arena is an append-only node store; slot 0 is never handed out.
type arena[K any] struct {
	nodes []node[K]
}

// newArena returns an arena holding only the sentinel slot.
func newArena[K any]() arena[K] {
	return arena[K]{nodes: make([]node[K], 1)}
}

// allocate appends a detached leaf for key and returns its index.
// Any *node obtained from get before the call may point into the old
// backing array and must not be used afterwards.
func (a *arena[K]) allocate(key K) nodeIndex {
	a.nodes = append(a.nodes, node[K]{key: key, height: 1, size: 1})
	return nodeIndex(len(a.nodes) - 1)
}

// get returns the node stored at i. Dereferencing the sentinel is a
// programmer error.
func (a *arena[K]) get(i nodeIndex) *node[K] {
	if i == nilIndex {
		panic("avl: dereference of nil node")
	}
	if int(i) >= len(a.nodes) {
		panic(fmt.Sprintf("avl: node index %d out of range [1, %d)", i, len(a.nodes)))
	}
	return &a.nodes[i]
}

// len returns the number of allocated nodes, excluding the sentinel.
func (a *arena[K]) len() int {
	return len(a.nodes) - 1
}

// reset drops every node but keeps the backing array for reuse.
func (a *arena[K]) reset() {
	clear(a.nodes[1:])
	a.nodes = a.nodes[:1]
}
