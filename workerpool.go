package softraster

import "github.com/gogpu/softraster/internal/parallel"

// WorkerPool is the in-repo Parallelizer: a work-stealing pool of goroutines
// with per-worker queues. It satisfies the reentrancy contract — submission
// never blocks, and overflow work runs inline on the submitting goroutine —
// so resampling may be triggered from inside an already parallelized task.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	pool *parallel.Pool
}

// NewWorkerPool creates a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	return &WorkerPool{pool: parallel.NewPool(workers)}
}

// RunRange implements Parallelizer.
func (p *WorkerPool) RunRange(begin, end int, fn func(begin, end int)) {
	p.pool.RunRange(begin, end, fn)
}

// Workers returns the number of worker goroutines.
func (p *WorkerPool) Workers() int { return p.pool.Workers() }

// Close shuts the pool down, waiting for queued work to complete.
// Close is safe to call multiple times; RunRange after Close degrades to
// running the workload on the calling goroutine.
func (p *WorkerPool) Close() { p.pool.Close() }

// Serial is a Parallelizer that runs every workload immediately on the
// calling goroutine, in order. Useful for deterministic debugging.
type Serial struct{}

// RunRange implements Parallelizer.
func (Serial) RunRange(begin, end int, fn func(begin, end int)) {
	parallel.Serial{}.RunRange(begin, end, fn)
}
