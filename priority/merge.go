package priority

import (
	"iter"

	"github.com/davidvella/priq/loser"
)

// head is the current top of one source queue in a k-way merge.
type head[S, T any] struct {
	score S
	src   *Queue[S, T]
}

// Merged pops from all queues together, yielding their entries in one
// priority order. The ordering of the first queue is used for the merge.
// Breaking out of the loop leaves everything not yet yielded in its source
// queue.
func Merged[S, T any](queues ...*Queue[S, T]) iter.Seq2[S, T] {
	return func(yield func(S, T) bool) {
		var compare CompareFunc[S]
		sequences := make([]loser.Sequence[head[S, T]], 0, len(queues))
		seen := make(map[*Queue[S, T]]struct{}, len(queues))
		for _, q := range queues {
			if _, dup := seen[q]; q == nil || dup {
				continue
			}
			seen[q] = struct{}{}
			if compare == nil {
				compare = q.compare
			}
			sequences = append(sequences, peeker(q))
		}
		if len(sequences) == 0 {
			return
		}

		tree := loser.New(sequences, func(a, b head[S, T]) bool {
			return before(compare, a.score, b.score)
		})
		for h := range tree.All() {
			s, t, _ := h.src.Pop()
			if !yield(s, t) {
				return
			}
		}
	}
}

// peeker follows the top of q without removing it. Merged pops the entry
// once it wins, and the next pull sees the new top.
func peeker[S, T any](q *Queue[S, T]) loser.Seq[head[S, T]] {
	return func(yield func(head[S, T]) bool) {
		for {
			s, _, ok := q.Peek()
			if !ok || !yield(head[S, T]{score: s, src: q}) {
				return
			}
		}
	}
}
