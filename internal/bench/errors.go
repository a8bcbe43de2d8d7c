package bench

import "errors"

var (
	ErrUnknownWorkload = errors.New("unknown workload")
	ErrInvalidConfig   = errors.New("invalid config")
	ErrOutOfOrder      = errors.New("entries out of order")
	ErrLostEntries     = errors.New("entries lost")
)
