package priority

import "cmp"

// Ordering is the result of comparing two scores. Unlike cmp.Compare it has
// a fourth outcome, Unordered, for scores that cannot be ranked against each
// other (NaN against anything, including itself).
type Ordering int8

const (
	Less      Ordering = -1
	Equal     Ordering = 0
	Greater   Ordering = 1
	Unordered Ordering = 2
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	case Unordered:
		return "Unordered"
	default:
		return "Ordering(?)"
	}
}

// CompareFunc reports how a ranks against b.
type CompareFunc[S any] func(a, b S) Ordering

// PartialCompare orders values of any cmp.Ordered type. Floating point NaN is
// Unordered against every value, itself included.
func PartialCompare[S cmp.Ordered](a, b S) Ordering {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	case a == b:
		return Equal
	default:
		return Unordered
	}
}

// Reverse flips Less and Greater, turning a min-heap into a max-heap.
// Unordered stays Unordered.
func Reverse[S any](compare CompareFunc[S]) CompareFunc[S] {
	return func(a, b S) Ordering {
		return compare(b, a)
	}
}

// FromLess builds a total-order CompareFunc out of a less function.
func FromLess[S any](less func(a, b S) bool) CompareFunc[S] {
	return func(a, b S) Ordering {
		switch {
		case less(a, b):
			return Less
		case less(b, a):
			return Greater
		default:
			return Equal
		}
	}
}

// orderable reports whether s can be ranked at all, i.e. it is comparable
// with itself.
func orderable[S any](compare CompareFunc[S], s S) bool {
	return compare(s, s) != Unordered
}

// before reports whether a must sit above b in the heap. Orderable scores
// rank ahead of unordered ones; two scores that cannot be compared never
// move past each other.
func before[S any](compare CompareFunc[S], a, b S) bool {
	switch compare(a, b) {
	case Less:
		return true
	case Unordered:
		return orderable(compare, a) && !orderable(compare, b)
	default:
		return false
	}
}
