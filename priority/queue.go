package priority

import (
	"cmp"
	"fmt"
	"iter"
	"math/bits"
	"slices"
)

// Entry is a score and the item stored under it.
type Entry[S, T any] struct {
	Score S
	Item  T
}

// Queue is a binary min-heap of entries ordered by score. The ordering of
// items is never consulted.
//
// A Queue is not safe for concurrent use. It may be handed to another
// goroutine whenever its scores and items may be.
type Queue[S, T any] struct {
	buf     store[S, T]
	compare CompareFunc[S]
	shrink  bool
}

// New creates an empty queue ordered by the natural order of S. NaN scores
// are served after every other score.
func New[S cmp.Ordered, T any](opts ...Option) *Queue[S, T] {
	return NewFunc[S, T](PartialCompare[S], opts...)
}

// NewFunc creates an empty queue ordered by compare. Nothing is allocated
// until the first Put unless WithCapacity is given.
func NewFunc[S, T any](compare CompareFunc[S], opts ...Option) *Queue[S, T] {
	o := buildOptions(opts)
	return &Queue[S, T]{
		buf:     newStoreWithCapacity[S, T](o.capacity, o.logger),
		compare: compare,
		shrink:  o.shrink,
	}
}

// FromEntries builds a queue holding every entry of entries.
func FromEntries[S cmp.Ordered, T any](entries []Entry[S, T], opts ...Option) *Queue[S, T] {
	return FromEntriesFunc(PartialCompare[S], entries, opts...)
}

// FromEntriesFunc builds a queue ordered by compare holding every entry of
// entries. Capacity is rounded up to a power of two so the queue can keep
// growing cheaply.
func FromEntriesFunc[S, T any](compare CompareFunc[S], entries []Entry[S, T], opts ...Option) *Queue[S, T] {
	size := nextPowerOfTwo(max(initialCapacity, len(entries)) + 1)
	opts = append([]Option{WithCapacity(size)}, opts...)
	q := NewFunc[S, T](compare, opts...)
	for _, e := range entries {
		q.Put(e.Score, e.Item)
	}
	return q
}

// Collect builds a queue from every pair produced by seq.
func Collect[S cmp.Ordered, T any](seq iter.Seq2[S, T], opts ...Option) *Queue[S, T] {
	return CollectFunc(PartialCompare[S], seq, opts...)
}

// CollectFunc builds a queue ordered by compare from every pair produced by
// seq.
func CollectFunc[S, T any](compare CompareFunc[S], seq iter.Seq2[S, T], opts ...Option) *Queue[S, T] {
	q := NewFunc[S, T](compare, opts...)
	for s, t := range seq {
		q.Put(s, t)
	}
	return q
}

// Len returns the number of entries in the queue.
func (q *Queue[S, T]) Len() int {
	return q.buf.len()
}

// IsEmpty reports whether the queue holds no entries.
func (q *Queue[S, T]) IsEmpty() bool {
	return q.buf.len() == 0
}

// Cap returns the number of entries the queue can hold before it grows.
func (q *Queue[S, T]) Cap() int {
	return q.buf.cap()
}

// Put inserts item under score.
//
// The new entry starts in the first free slot and climbs toward the root
// while its parent scores strictly higher. An Unordered comparison stops the
// climb, except that a score which compares with itself always climbs past
// one that does not.
func (q *Queue[S, T]) Put(score S, item T) {
	if q.buf.full() {
		q.buf.grow()
	}
	q.buf.data = append(q.buf.data, Entry[S, T]{Score: score, Item: item})
	q.up(q.buf.len() - 1)
}

// Pop removes and returns the entry with the lowest score. ok is false when
// the queue is empty.
//
// Scores that cannot be compared even with themselves are served only once
// every comparable score has been popped.
func (q *Queue[S, T]) Pop() (score S, item T, ok bool) {
	n := q.buf.len()
	if n == 0 {
		return score, item, false
	}
	last := n - 1
	data := q.buf.data
	// An unordered root is parked in the last slot so it leaves the heap
	// last; whatever replaced it is sifted back into place first.
	if n > 1 && !orderable(q.compare, data[0].Score) {
		q.swap(0, last)
		q.down(0)
	}

	top := data[0]
	data[0] = data[last]
	data[last] = Entry[S, T]{}
	q.buf.data = data[:last]

	if last > 1 {
		q.down(0)
	}
	if q.shrink && q.buf.shouldShrink() {
		q.buf.shrink()
	}
	return top.Score, top.Item, true
}

// MustPop is Pop for callers that already know the queue is not empty. It
// panics with ErrEmptyQueue otherwise.
func (q *Queue[S, T]) MustPop() (S, T) {
	s, t, ok := q.Pop()
	if !ok {
		panic(fmt.Errorf("%w: MustPop called on an empty queue", ErrEmptyQueue))
	}
	return s, t
}

// Peek returns the entry with the lowest score without removing it.
func (q *Queue[S, T]) Peek() (score S, item T, ok bool) {
	if q.buf.len() == 0 {
		return score, item, false
	}
	top := q.buf.data[0]
	return top.Score, top.Item, true
}

// Clear removes every entry. Capacity is kept.
func (q *Queue[S, T]) Clear() {
	q.DrainAll().Close()
}

// Drain removes every entry from the queue and returns the ones stored at
// indices [start, end) as a one-shot iterator in storage order, not
// priority order. Entries outside the range are discarded.
//
// The queue is empty as soon as Drain returns, however much of the
// iterator is consumed. Drain panics if the range is out of bounds.
func (q *Queue[S, T]) Drain(start, end int) *Iter[S, T] {
	n := q.buf.len()
	if start < 0 || end > n || start > end {
		panic(fmt.Sprintf("priority: drain range [%d:%d] out of bounds for length %d", start, end, n))
	}
	detached := slices.Clone(q.buf.data[start:end])
	q.buf.truncate(0)
	return newIter(detached)
}

// DrainAll is Drain over the whole queue.
func (q *Queue[S, T]) DrainAll() *Iter[S, T] {
	return q.Drain(0, q.buf.len())
}

// Truncate keeps the first n entries in storage order and drops the rest.
// It is a no-op when n is not below Len.
//
// The heap is not repaired afterwards: the surviving prefix is whatever the
// storage held, so a following Pop is only guaranteed to return the lowest
// score among the survivors when the prefix already satisfied the heap
// order.
func (q *Queue[S, T]) Truncate(n int) {
	if n < 0 {
		panic(fmt.Sprintf("priority: truncate to negative length %d", n))
	}
	if n >= q.buf.len() {
		return
	}
	q.buf.truncate(n)
}

// IntoSorted empties the queue into a slice sorted by ascending score.
// Entries whose scores do not compare with themselves come last, in no
// particular order. For other Unordered pairs the left entry goes first.
func (q *Queue[S, T]) IntoSorted() []Entry[S, T] {
	entries := q.DrainAll().Collect()
	sortable := make([]Entry[S, T], 0, len(entries))
	var unordered []Entry[S, T]
	for _, e := range entries {
		if orderable(q.compare, e.Score) {
			sortable = append(sortable, e)
		} else {
			unordered = append(unordered, e)
		}
	}
	slices.SortStableFunc(sortable, func(a, b Entry[S, T]) int {
		switch q.compare(a.Score, b.Score) {
		case Greater:
			return 1
		case Equal:
			return 0
		default:
			return -1
		}
	})
	return append(sortable, unordered...)
}

// Merge moves every entry of other into q, in other's priority order.
// other is left empty.
func (q *Queue[S, T]) Merge(other *Queue[S, T]) {
	if other == nil || other == q {
		return
	}
	for {
		s, t, ok := other.Pop()
		if !ok {
			return
		}
		q.Put(s, t)
	}
}

// Combine returns a queue holding the entries of both a and b, using a's
// ordering and storage. Both a and b are left empty.
func Combine[S, T any](a, b *Queue[S, T]) *Queue[S, T] {
	res := &Queue[S, T]{
		buf:     a.buf,
		compare: a.compare,
		shrink:  a.shrink,
	}
	res.buf.data = a.buf.take()
	res.Merge(b)
	return res
}

// Clone returns a queue holding the same entries in the same storage order.
// Scores and items are copied shallowly.
func (q *Queue[S, T]) Clone() *Queue[S, T] {
	dst := &Queue[S, T]{
		buf:     newStoreWithCapacity[S, T](q.buf.len()+1, q.buf.log),
		compare: q.compare,
		shrink:  q.shrink,
	}
	dst.buf.data = append(dst.buf.data, q.buf.data...)
	return dst
}

// Slice returns the live entries in storage order. The slice aliases the
// queue and is invalid after the next mutating call. If scores are changed
// through it, call Reheap before using the queue again.
func (q *Queue[S, T]) Slice() []Entry[S, T] {
	return q.buf.data
}

// All iterates the live entries in storage order without removing them.
// The queue must not be mutated during iteration.
func (q *Queue[S, T]) All() iter.Seq2[S, T] {
	return func(yield func(S, T) bool) {
		for _, e := range q.buf.data {
			if !yield(e.Score, e.Item) {
				return
			}
		}
	}
}

// IntoIter hands the queue's storage to a consuming iterator that yields
// every entry once in storage order. The queue is left empty with no
// capacity.
func (q *Queue[S, T]) IntoIter() *Iter[S, T] {
	return newIter(q.buf.take())
}

// Reheap restores the heap order over the whole storage.
func (q *Queue[S, T]) Reheap() {
	for i := q.buf.len()/2 - 1; i >= 0; i-- {
		q.down(i)
	}
}

func left(i int) int   { return 2*i + 1 }
func right(i int) int  { return 2*i + 2 }
func parent(i int) int { return (i - 1) / 2 }

// swap swaps entries at index i and j.
func (q *Queue[S, T]) swap(i, j int) {
	q.buf.data[i], q.buf.data[j] = q.buf.data[j], q.buf.data[i]
}

// less reports whether the entry at i belongs above the entry at j.
func (q *Queue[S, T]) less(i, j int) bool {
	return before(q.compare, q.buf.data[i].Score, q.buf.data[j].Score)
}

// up moves the element at index i up to its proper position.
func (q *Queue[S, T]) up(i int) {
	for i > 0 {
		p := parent(i)
		if !q.less(i, p) {
			break
		}
		q.swap(i, p)
		i = p
	}
}

// down moves the element at index i down to its proper position.
func (q *Queue[S, T]) down(i int) {
	n := q.buf.len()
	for {
		smallest := i
		l, r := left(i), right(i)

		if l < n && q.less(l, smallest) {
			smallest = l
		}
		if r < n && q.less(r, smallest) {
			smallest = r
		}

		if smallest == i {
			break
		}

		q.swap(i, smallest)
		i = smallest
	}
}

func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}
