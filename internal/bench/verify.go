package bench

import (
	"fmt"
	"math"

	"github.com/google/btree"

	"github.com/davidvella/priq/priority"
)

// checkOrder verifies that scores never decrease and that every NaN comes
// after the last ordinary score.
func checkOrder(scores []float64) error {
	seenNaN := false
	for i, s := range scores {
		if math.IsNaN(s) {
			seenNaN = true
			continue
		}
		if seenNaN {
			return fmt.Errorf("%w: score %g at %d follows a NaN", ErrOutOfOrder, s, i)
		}
		if i > 0 && s < scores[i-1] {
			return fmt.Errorf("%w: score %g at %d follows %g", ErrOutOfOrder, s, i, scores[i-1])
		}
	}
	return nil
}

func checkCount(got, want int) error {
	if got != want {
		return fmt.Errorf("%w: got %d entries, want %d", ErrLostEntries, got, want)
	}
	return nil
}

// sortKey makes equal scores distinct inside the reference tree.
type sortKey struct {
	score float64
	seq   int
}

func lessSortKey(a, b sortKey) bool {
	if a.score != b.score {
		return a.score < b.score
	}
	return a.seq < b.seq
}

// checkSorted compares sorted against a reference ordering of input built
// with a B-tree. NaN scores are expected at the tail.
func checkSorted(input, sorted []priority.Entry[float64, string]) error {
	if err := checkCount(len(sorted), len(input)); err != nil {
		return err
	}

	ref := btree.NewG[sortKey](32, lessSortKey)
	nans := 0
	for i, e := range input {
		if math.IsNaN(e.Score) {
			nans++
			continue
		}
		ref.ReplaceOrInsert(sortKey{score: e.Score, seq: i})
	}

	var err error
	i := 0
	ref.Ascend(func(k sortKey) bool {
		if got := sorted[i].Score; got != k.score {
			err = fmt.Errorf("%w: score %g at %d, want %g", ErrOutOfOrder, got, i, k.score)
			return false
		}
		i++
		return true
	})
	if err != nil {
		return err
	}

	for j := i; j < len(sorted); j++ {
		if !math.IsNaN(sorted[j].Score) {
			return fmt.Errorf("%w: score %g at %d, want NaN", ErrOutOfOrder, sorted[j].Score, j)
		}
	}
	return checkCount(len(sorted)-i, nans)
}
