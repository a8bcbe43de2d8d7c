package bench

import (
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Workload names one kind of queue exercise.
type Workload string

const (
	WorkloadPut   Workload = "put"
	WorkloadPop   Workload = "pop"
	WorkloadMixed Workload = "mixed"
	WorkloadMerge Workload = "merge"
	WorkloadSort  Workload = "sort"
)

// Workloads lists every workload in the order the CLI documents them.
var Workloads = []Workload{WorkloadPut, WorkloadPop, WorkloadMixed, WorkloadMerge, WorkloadSort}

const (
	DefaultSize        = 10_000
	DefaultIterations  = 100
	DefaultConcurrency = 4
	DefaultSampleRatio = 1.0

	// mergeFanIn is the number of queues the merge workload splits its entries across.
	mergeFanIn = 4
)

type Config struct {
	Workload    Workload
	Size        int
	Iterations  int
	Concurrency int
	// SampleRatio is the fraction of timed iterations kept for percentile calculation.
	SampleRatio float64
	// NaNRatio is the fraction of generated scores that are NaN.
	NaNRatio float64
	Seed     uint64
	// Progress receives the progress bar. Nil disables it.
	Progress io.Writer
}

func DefaultConfig() Config {
	return Config{
		Workload:    WorkloadMixed,
		Size:        DefaultSize,
		Iterations:  DefaultIterations,
		Concurrency: DefaultConcurrency,
		SampleRatio: DefaultSampleRatio,
	}
}

func ParseWorkload(s string) (Workload, error) {
	w := Workload(strings.ToLower(s))
	for _, known := range Workloads {
		if w == known {
			return w, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownWorkload, s)
}

// Validate reports every problem with the configuration at once.
func (c Config) Validate() error {
	var errs *multierror.Error
	if _, err := ParseWorkload(string(c.Workload)); err != nil {
		errs = multierror.Append(errs, err)
	}
	if c.Size < 1 {
		errs = multierror.Append(errs, fmt.Errorf("%w: size must be positive (%d)", ErrInvalidConfig, c.Size))
	}
	if c.Iterations < 1 {
		errs = multierror.Append(errs, fmt.Errorf("%w: iterations must be positive (%d)", ErrInvalidConfig, c.Iterations))
	}
	if c.Concurrency < 1 {
		errs = multierror.Append(errs, fmt.Errorf("%w: concurrency must be positive (%d)", ErrInvalidConfig, c.Concurrency))
	}
	if c.SampleRatio <= 0 || c.SampleRatio > 1 {
		errs = multierror.Append(errs, fmt.Errorf("%w: sample ratio must be in (0, 1] (%g)", ErrInvalidConfig, c.SampleRatio))
	}
	if c.NaNRatio < 0 || c.NaNRatio > 1 {
		errs = multierror.Append(errs, fmt.Errorf("%w: nan ratio must be in [0, 1] (%g)", ErrInvalidConfig, c.NaNRatio))
	}
	return errs.ErrorOrNil()
}

// sampleSize is the number of latency samples kept by the tachymeter.
func (c Config) sampleSize() int {
	n := int(float64(c.Iterations*c.Concurrency) * c.SampleRatio)
	return max(n, 1)
}
