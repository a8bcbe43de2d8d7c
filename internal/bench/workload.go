package bench

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/davidvella/priq/priority"
)

type entry = priority.Entry[float64, string]

// worker owns its queues and random source, so nothing it touches is shared.
type worker struct {
	id  int
	cfg Config
	rng *rand.Rand
	log logrus.FieldLogger
}

func newWorker(id int, seed uint64, cfg Config, log logrus.FieldLogger) *worker {
	return &worker{
		id:  id,
		cfg: cfg,
		rng: rand.New(rand.NewPCG(seed, uint64(id))),
		log: log,
	}
}

func (w *worker) score() float64 {
	if w.cfg.NaNRatio > 0 && w.rng.Float64() < w.cfg.NaNRatio {
		return math.NaN()
	}
	return w.rng.Float64() * float64(w.cfg.Size)
}

func (w *worker) entries(n int) []entry {
	out := make([]entry, n)
	for i := range out {
		out[i] = entry{Score: w.score(), Item: uuid.NewString()}
	}
	return out
}

func (w *worker) newQueue() *priority.Queue[float64, string] {
	return priority.New[float64, string](priority.WithLogger(w.log))
}

func (w *worker) fromEntries(entries []entry) *priority.Queue[float64, string] {
	return priority.FromEntries(entries, priority.WithLogger(w.log))
}

// run executes one iteration of the workload and returns the time spent in
// queue operations only. Input generation and verification are not timed.
func (w *worker) run() (time.Duration, error) {
	switch w.cfg.Workload {
	case WorkloadPut:
		return w.put()
	case WorkloadPop:
		return w.pop()
	case WorkloadMixed:
		return w.mixed()
	case WorkloadMerge:
		return w.merge()
	case WorkloadSort:
		return w.sort()
	default:
		return 0, ErrUnknownWorkload
	}
}

func (w *worker) put() (time.Duration, error) {
	input := w.entries(w.cfg.Size)

	start := time.Now()
	q := w.newQueue()
	for _, e := range input {
		q.Put(e.Score, e.Item)
	}
	elapsed := time.Since(start)

	return elapsed, checkCount(q.Len(), len(input))
}

func (w *worker) pop() (time.Duration, error) {
	q := w.fromEntries(w.entries(w.cfg.Size))
	scores := make([]float64, 0, q.Len())

	start := time.Now()
	for {
		s, _, ok := q.Pop()
		if !ok {
			break
		}
		scores = append(scores, s)
	}
	elapsed := time.Since(start)

	if err := checkCount(len(scores), w.cfg.Size); err != nil {
		return elapsed, err
	}
	return elapsed, checkOrder(scores)
}

// mixed starts from a half full queue and flips a coin between put and pop
// for every generated entry.
func (w *worker) mixed() (time.Duration, error) {
	q := w.fromEntries(w.entries(w.cfg.Size / 2))
	input := w.entries(w.cfg.Size)
	coins := make([]bool, len(input))
	for i := range coins {
		coins[i] = w.rng.IntN(2) == 0
	}
	want := q.Len()

	start := time.Now()
	for i, e := range input {
		if coins[i] {
			q.Put(e.Score, e.Item)
			want++
		} else if _, _, ok := q.Pop(); ok {
			want--
		}
	}
	elapsed := time.Since(start)

	return elapsed, checkCount(q.Len(), want)
}

func (w *worker) merge() (time.Duration, error) {
	input := w.entries(w.cfg.Size)
	queues := make([]*priority.Queue[float64, string], mergeFanIn)
	for i := range queues {
		queues[i] = w.newQueue()
	}
	for i, e := range input {
		queues[i%mergeFanIn].Put(e.Score, e.Item)
	}
	scores := make([]float64, 0, len(input))

	start := time.Now()
	for s := range priority.Merged(queues...) {
		scores = append(scores, s)
	}
	elapsed := time.Since(start)

	left := 0
	for _, q := range queues {
		left += q.Len()
	}
	if err := checkCount(left, 0); err != nil {
		return elapsed, err
	}
	if err := checkCount(len(scores), len(input)); err != nil {
		return elapsed, err
	}
	return elapsed, checkOrder(scores)
}

func (w *worker) sort() (time.Duration, error) {
	input := w.entries(w.cfg.Size)
	q := w.fromEntries(input)

	start := time.Now()
	sorted := q.IntoSorted()
	elapsed := time.Since(start)

	return elapsed, checkSorted(input, sorted)
}
