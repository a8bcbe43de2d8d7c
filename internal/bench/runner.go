// Package bench drives concurrent load against priority queues and collects
// latency statistics for each workload.
package bench

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/jamiealquiza/tachymeter"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"github.com/davidvella/priq/internal/logging"
)

// Result summarizes one run.
type Result struct {
	RunID       string
	Workload    Workload
	Size        int
	Concurrency int
	Iterations  int
	// Failed counts iterations whose output did not verify.
	Failed  int64
	Metrics *tachymeter.Metrics
}

// Run executes cfg.Iterations iterations of the workload on each of
// cfg.Concurrency workers. Every worker owns the queues it builds.
// Verification failures are counted in the result and do not stop the run.
func Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	runID := uuid.NewString()
	ctx = logging.AddFields(ctx, logging.Fields{
		logging.RunIDFieldKey:    runID,
		logging.WorkloadFieldKey: string(cfg.Workload),
	})
	log := logging.FromContext(ctx)
	log.WithFields(logging.Fields{
		"size":        cfg.Size,
		"iterations":  cfg.Iterations,
		"concurrency": cfg.Concurrency,
		"seed":        seed,
	}).Info("Starting run")

	total := cfg.Iterations * cfg.Concurrency
	var bar *progressbar.ProgressBar
	if cfg.Progress != nil {
		bar = progressbar.NewOptions(total,
			progressbar.OptionSetWriter(cfg.Progress),
			progressbar.OptionSetDescription(string(cfg.Workload)),
			progressbar.OptionShowCount(),
		)
	}
	t := tachymeter.New(&tachymeter.Config{Size: cfg.sampleSize()})

	var failed int64
	startingLine := make(chan struct{})
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < cfg.Concurrency; i++ {
		wctx := logging.AddFields(ctx, logging.Fields{logging.WorkerFieldKey: i})
		w := newWorker(i, seed, cfg, logging.FromContext(wctx))
		g.Go(func() error {
			<-startingLine
			for it := 0; it < cfg.Iterations; it++ {
				if err := wctx.Err(); err != nil {
					return errors.Wrapf(err, "worker %d stopped at iteration %d", w.id, it)
				}
				elapsed, err := w.run()
				if err != nil {
					atomic.AddInt64(&failed, 1)
					w.log.WithError(err).WithField("iteration", it).Error("Verification failed")
				}
				t.AddTime(elapsed)
				if bar != nil {
					_ = bar.Add(1)
				}
			}
			return nil
		})
	}

	wallTimeStart := time.Now()
	close(startingLine)
	err := g.Wait()
	if bar != nil {
		_ = bar.Finish()
	}
	if err != nil {
		return nil, err
	}
	t.SetWallTime(time.Since(wallTimeStart))

	res := &Result{
		RunID:       runID,
		Workload:    cfg.Workload,
		Size:        cfg.Size,
		Concurrency: cfg.Concurrency,
		Iterations:  cfg.Iterations,
		Failed:      atomic.LoadInt64(&failed),
		Metrics:     t.Calc(),
	}
	log.WithField("failed", res.Failed).Info("Run complete")
	return res, nil
}
