package searcher

import "nogo/game"

// The search tree is an arena: all nodes live in one slice and refer to each
// other by index. Parent->children links own the subtree, the parent index is
// a non-owning back-reference for ascent during backpropagation, and teardown
// is a single O(1) release of the arena. Indices stay stable because nodes
// are only ever appended.

const (
	rootID   = 0
	noParent = -1
)

type node struct {
	state    game.Position
	move     game.Move // NoMove at the root
	parent   int
	children []int

	// Node-local counters. The root's visits double as the reference total
	// for the exploration term of its children; non-root counters track the
	// invariant visits >= wins >= 0 alongside the shared action table.
	visits int
	wins   int
}

type tree struct {
	nodes []node
}

// newTree allocates a fresh arena holding only the root.
func newTree(root game.Position) *tree {
	return &tree{nodes: []node{{
		state:  root,
		move:   game.NoMove,
		parent: noParent,
	}}}
}

func (t *tree) at(id int) *node {
	return &t.nodes[id]
}

func (t *tree) root() *node {
	return &t.nodes[rootID]
}

// add appends a child of parent produced by move, caching the resulting
// state. Returns the new node's index. Pointers obtained from at() before a
// call to add are invalid afterwards; always re-fetch by index.
func (t *tree) add(parent int, move game.Move, state game.Position) int {
	id := len(t.nodes)
	t.nodes = append(t.nodes, node{
		state:  state,
		move:   move,
		parent: parent,
	})
	t.nodes[parent].children = append(t.nodes[parent].children, id)
	return id
}

// size is the number of live nodes.
func (t *tree) size() int {
	return len(t.nodes)
}

// release tears the whole tree down at once. Safe on a partially built tree
// and idempotent; no node pointer may be used after this returns.
func (t *tree) release() {
	t.nodes = nil
}
