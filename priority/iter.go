package priority

import "iter"

// Iter is a one-shot, consuming iterator over entries detached from a
// queue by Drain or IntoIter. It owns its entries; a consumed slot is
// zeroed right away and the buffer is dropped once the iterator is
// exhausted or closed.
type Iter[S, T any] struct {
	entries []Entry[S, T]
	next    int
}

func newIter[S, T any](entries []Entry[S, T]) *Iter[S, T] {
	return &Iter[S, T]{entries: entries}
}

// Next returns the next entry. ok is false once the iterator is exhausted.
func (it *Iter[S, T]) Next() (score S, item T, ok bool) {
	if it.next >= len(it.entries) {
		it.Close()
		return score, item, false
	}
	e := it.entries[it.next]
	it.entries[it.next] = Entry[S, T]{}
	it.next++
	return e.Score, e.Item, true
}

// Len returns the number of entries not yet yielded.
func (it *Iter[S, T]) Len() int {
	return len(it.entries) - it.next
}

// All yields the remaining entries. Breaking out of the loop leaves the rest
// in the iterator.
func (it *Iter[S, T]) All() iter.Seq2[S, T] {
	return func(yield func(S, T) bool) {
		for {
			s, t, ok := it.Next()
			if !ok || !yield(s, t) {
				return
			}
		}
	}
}

// Collect returns the remaining entries and exhausts the iterator.
func (it *Iter[S, T]) Collect() []Entry[S, T] {
	rest := make([]Entry[S, T], 0, it.Len())
	for s, t := range it.All() {
		rest = append(rest, Entry[S, T]{Score: s, Item: t})
	}
	return rest
}

// Close discards the remaining entries.
func (it *Iter[S, T]) Close() {
	clear(it.entries[it.next:])
	it.entries = nil
	it.next = 0
}
