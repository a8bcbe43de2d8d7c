package priority

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/sirupsen/logrus"
)

const (
	initialCapacity = 10
	growthFactor    = 3

	// Stores larger than shrinkThreshold give memory back once occupancy
	// drops to a quarter of capacity.
	shrinkThreshold = 1000

	// maxAllocBytes bounds a single allocation, mirroring the largest object
	// the platform can address.
	maxAllocBytes = math.MaxInt

	// zeroSizedCapacity is the saturated capacity reported for entries that
	// occupy no memory.
	zeroSizedCapacity = math.MaxInt
)

// store owns the contiguous buffer behind a queue. It knows nothing about
// ordering: len(data) is the live count and cap(data) the capacity.
type store[S, T any] struct {
	data     []Entry[S, T]
	elemSize uintptr
	log      logrus.FieldLogger
}

func newStore[S, T any](log logrus.FieldLogger) store[S, T] {
	s := store[S, T]{
		elemSize: unsafe.Sizeof(Entry[S, T]{}),
		log:      log,
	}
	s.data = s.empty()
	return s
}

func newStoreWithCapacity[S, T any](n int, log logrus.FieldLogger) store[S, T] {
	s := newStore[S, T](log)
	if n < 0 {
		panic(fmt.Errorf("%w: negative capacity %d", ErrCapacityOverflow, n))
	}
	if n > 0 && s.elemSize != 0 {
		s.checkCapacity(n)
		s.data = make([]Entry[S, T], 0, n)
	}
	return s
}

// empty returns the zero-length buffer this store starts from. Zero-size
// entries get a saturated capacity so growth is never triggered.
func (s *store[S, T]) empty() []Entry[S, T] {
	if s.elemSize == 0 {
		c := zeroSizedCapacity
		return make([]Entry[S, T], 0, c)
	}
	return nil
}

func (s *store[S, T]) len() int { return len(s.data) }

func (s *store[S, T]) cap() int { return cap(s.data) }

func (s *store[S, T]) full() bool { return len(s.data) == cap(s.data) }

// grow raises capacity to initialCapacity on first use and by growthFactor
// after that. Existing entries are moved, not rebuilt.
func (s *store[S, T]) grow() {
	if s.elemSize == 0 {
		s.overflow(cap(s.data))
	}
	newCap := initialCapacity
	if c := cap(s.data); c > 0 {
		if c > s.maxCapacity()/growthFactor {
			s.overflow(c)
		}
		newCap = c * growthFactor
	}
	s.log.WithFields(logrus.Fields{
		"from": cap(s.data),
		"to":   newCap,
		"len":  len(s.data),
	}).Debug("Growing priority queue store")
	s.resize(newCap)
}

// shouldShrink reports whether a large store is mostly empty.
func (s *store[S, T]) shouldShrink() bool {
	if s.elemSize == 0 {
		return false
	}
	c := cap(s.data)
	return c > shrinkThreshold && c/4 >= len(s.data)
}

// shrink reallocates to twice the live count, never below initialCapacity.
func (s *store[S, T]) shrink() {
	newCap := max(initialCapacity, 2*len(s.data))
	if s.elemSize == 0 || newCap >= cap(s.data) {
		return
	}
	s.log.WithFields(logrus.Fields{
		"from": cap(s.data),
		"to":   newCap,
		"len":  len(s.data),
	}).Debug("Shrinking priority queue store")
	s.resize(newCap)
}

func (s *store[S, T]) resize(n int) {
	data := make([]Entry[S, T], len(s.data), n)
	copy(data, s.data)
	clear(s.data)
	s.data = data
}

// truncate drops the entries at n and beyond, zeroing the vacated slots.
func (s *store[S, T]) truncate(n int) {
	clear(s.data[n:])
	s.data = s.data[:n]
}

// take hands the live entries to the caller and leaves the store released.
func (s *store[S, T]) take() []Entry[S, T] {
	data := s.data
	s.data = s.empty()
	return data
}

// release drops the allocation.
func (s *store[S, T]) release() {
	clear(s.data)
	s.data = s.empty()
}

func (s *store[S, T]) maxCapacity() int {
	return maxAllocBytes / int(s.elemSize)
}

func (s *store[S, T]) checkCapacity(n int) {
	if n > s.maxCapacity() {
		s.overflow(n)
	}
}

func (s *store[S, T]) overflow(c int) {
	err := fmt.Errorf("%w: cannot grow store of %d entries of %d bytes", ErrCapacityOverflow, c, s.elemSize)
	s.log.WithError(err).Error("Priority queue allocation is too large")
	panic(err)
}
