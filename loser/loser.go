// Package loser Taken from talk: https://github.com/bboreham/go-loser/blob/iter/tree.go.
// Thank you Bryan
package loser

import (
	"iter"
)

type Sequence[E any] interface {
	All() iter.Seq[E]
}

// Seq adapts a plain iter.Seq to a Sequence.
type Seq[E any] iter.Seq[E]

func (s Seq[E]) All() iter.Seq[E] { return iter.Seq[E](s) }

func New[E any](sequences []Sequence[E], less func(E, E) bool) *Tree[E] {
	t := Tree[E]{
		nodes:     make([]node[E], len(sequences)*2),
		sequences: sequences,
		less:      less,
	}
	return &t
}

// A loser tree is a binary tree laid out such that nodes N and N+1 have parent N/2.
// We store M leaf nodes in positions M...2M-1, and M-1 internal nodes in positions 1..M-1.
// Node 0 is a special node, containing the winner of the contest.
type Tree[E any] struct {
	nodes     []node[E]
	sequences []Sequence[E]
	less      func(E, E) bool
}

type node[E any] struct {
	index int              // This is the loser for all nodes except the 0th, where it is the winner.
	value E                // Value copied from the loser node, or winner for node 0.
	done  bool             // The sequence behind value is exhausted; loses to everything.
	next  func() (E, bool) // Only populated for leaf nodes.
}

func (t *Tree[E]) moveNext(index int) bool {
	n := &t.nodes[index]
	if v, ok := n.next(); ok {
		n.value = v
		return true
	}
	var zero E
	n.value = zero
	n.done = true
	return false
}

// beats reports whether a wins against b. An exhausted side always loses.
func (t *Tree[E]) beats(a E, aDone bool, b E, bDone bool) bool {
	if aDone {
		return false
	}
	if bDone {
		return true
	}
	return t.less(a, b)
}

// All yields the merged sequences in order. It may only be ranged over once.
func (t *Tree[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		if len(t.nodes) == 0 {
			return
		}
		for i, s := range t.sequences {
			next, stop := iter.Pull(s.All())
			leaf := i + len(t.sequences)
			t.nodes[leaf].next = next
			//nolint:gocritic // is not a leak.
			defer stop()
			t.moveNext(leaf) // Call next() on each item to get the first value.
		}
		t.initialize()
		for !t.nodes[0].done && yield(t.nodes[0].value) {
			t.moveNext(t.nodes[0].index)
			t.replayGames(t.nodes[0].index)
		}
	}
}

func (t *Tree[E]) initialize() {
	winner := t.playGame(1)
	t.nodes[0].index = winner
	t.nodes[0].value = t.nodes[winner].value
	t.nodes[0].done = t.nodes[winner].done
}

// Find the winner at position pos; if it is a non-leaf node, store the loser.
// pos must be >= 1 and < len(t.nodes).
func (t *Tree[E]) playGame(pos int) int {
	nodes := t.nodes
	if pos >= len(nodes)/2 {
		return pos
	}
	left := t.playGame(pos * 2)
	right := t.playGame(pos*2 + 1)
	var loser, winner int
	if t.beats(nodes[left].value, nodes[left].done, nodes[right].value, nodes[right].done) {
		loser, winner = right, left
	} else {
		loser, winner = left, right
	}
	nodes[pos].index = loser
	nodes[pos].value = nodes[loser].value
	nodes[pos].done = nodes[loser].done
	return winner
}

// Starting at pos, which is a winner, re-consider all values up to the root.
func (t *Tree[E]) replayGames(pos int) {
	nodes := t.nodes
	winningValue, winningDone := nodes[pos].value, nodes[pos].done
	for n := parent(pos); n != 0; n = parent(n) {
		node := &nodes[n]
		if t.beats(node.value, node.done, winningValue, winningDone) {
			// Record pos as the loser here, and the old loser is the new winner.
			node.index, pos = pos, node.index
			node.value, winningValue = winningValue, node.value
			node.done, winningDone = winningDone, node.done
		}
	}
	// pos is now the winner; store it in node 0.
	nodes[0].index = pos
	nodes[0].value = winningValue
	nodes[0].done = winningDone
}

func parent(i int) int { return i >> 1 }
