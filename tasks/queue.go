package tasks

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

const jobTimeout = 30 * time.Second

type job struct {
	name string
	fn   func(ctx context.Context) error
}

// Queue runs deferred side effects (confirmation email, cache recompute)
// on a small worker pool. Enqueue is fire-and-forget: a full queue drops
// the job with a warning instead of blocking or failing the caller.
type Queue struct {
	log  *zap.SugaredLogger
	jobs chan job
	wg   sync.WaitGroup
}

func NewQueue(log *zap.SugaredLogger, workers, size int) *Queue {
	if workers <= 0 {
		workers = 1
	}
	q := &Queue{
		log:  log,
		jobs: make(chan job, size),
	}
	for i := 0; i < workers; i++ {
		q.wg.Add(1)
		go q.worker()
	}
	return q
}

// Enqueue schedules fn for execution. Returns false when the job was
// dropped because the queue is full.
func (q *Queue) Enqueue(name string, fn func(ctx context.Context) error) bool {
	select {
	case q.jobs <- job{name: name, fn: fn}:
		return true
	default:
		q.log.Warnw("task queue full, dropping job", "task", name)
		return false
	}
}

// Close stops accepting jobs and waits for queued ones to finish.
func (q *Queue) Close() {
	close(q.jobs)
	q.wg.Wait()
}

func (q *Queue) worker() {
	defer q.wg.Done()
	for j := range q.jobs {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		if err := j.fn(ctx); err != nil {
			q.log.Errorw("task failed", "task", j.name, "error", err)
		}
		cancel()
	}
}
