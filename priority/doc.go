// Package priority implements a generic priority queue that stores explicit
// (score, item) pairs in a binary min-heap. Only the score takes part in the
// ordering; items can be of any type.
//
// Scores only need a partial order. Ordering is decided by a CompareFunc
// that reports Less, Equal, Greater or Unordered, so floating point scores
// work out of the box: a NaN score is never compared into the middle of the
// queue, it is served after every comparable score has been popped.
//
// Key features:
//   - Generic implementation over any score and item types
//   - O(log n) Put and Pop, O(1) Peek
//   - Partially ordered scores (NaN and friends)
//   - Bulk construction from slices and iter.Seq2 sequences
//   - Drain, Truncate and consuming iterators in storage order
//   - Sorted extraction, merge and k-way merged extraction
//
// Basic usage:
//
//	// Create a min-heap keyed by float64 scores
//	pq := priority.New[float64, string]()
//
//	// Add items
//	pq.Put(5, "task1")
//	pq.Put(3, "task2")
//	pq.Put(math.NaN(), "whenever")
//
//	// Look at the lowest score
//	score, item, ok := pq.Peek()
//
//	// Remove it
//	score, item, ok = pq.Pop()
//
// A max-heap is a min-heap over a reversed comparison:
//
//	pq := priority.NewFunc[int, string](priority.Reverse(priority.PartialCompare[int]))
//
// The heap lives in one growable buffer. Capacity starts at zero (or at
// WithCapacity), jumps to ten slots on the first Put and triples every time
// it fills up. Large buffers that fall below a quarter of their capacity
// during Pop are shrunk again unless WithShrink(false) is given.
//
// Entries are laid out as a complete binary tree: the children of index i
// live at 2i+1 and 2i+2. Slice, All, Drain and IntoIter expose that storage
// order, which is not priority order. Use Pop in a loop, IntoSorted or
// Merged to get entries by priority.
//
// A Queue is not safe for concurrent use. It can be handed over to another
// goroutine when its scores and items can be; callers that share a queue
// must serialize access themselves.
package priority
