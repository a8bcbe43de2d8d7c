package priority

import "errors"

var (
	// ErrEmptyQueue is the panic value of MustPop on an empty queue.
	ErrEmptyQueue = errors.New("priority queue is empty")
	// ErrCapacityOverflow is the panic value when a requested capacity cannot
	// be addressed.
	ErrCapacityOverflow = errors.New("capacity overflow")
)
