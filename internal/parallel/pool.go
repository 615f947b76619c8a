// Package parallel provides the worker pool and range-splitting primitives
// softraster's resampling strategies fan out on.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a pool of goroutines for parallel row computation.
//
// The pool distributes work items across multiple workers, each with their
// own queue. Workers can steal work from other workers when their own queue
// is empty, which balances load when some row ranges are slower than others.
//
// Pool is reentrant: submission never blocks the submitting goroutine, and a
// goroutine waiting on a batch drains queued items itself instead of parking.
// When a worker's queue is full the item runs inline on the submitter. A
// workload submitted from inside another workload therefore always makes
// progress, even under a bounded worker count.
//
// Thread safety: Pool is safe for concurrent use.
type Pool struct {
	// workers is the number of worker goroutines.
	workers int

	// workQueues holds per-worker work queues.
	// Each worker primarily pulls from its own queue but can steal from others.
	workQueues []chan func()

	// done signals workers to stop.
	done chan struct{}

	// wg waits for all workers to finish.
	wg sync.WaitGroup

	// running indicates whether the pool is accepting work.
	running atomic.Bool

	// next rotates the starting queue for submissions.
	next atomic.Uint64
}

// NewPool creates a new worker pool with the specified number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
// The pool starts immediately and workers begin waiting for work.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	// Buffer size: a few items per worker hides scheduling latency without
	// letting queues grow far beyond the in-flight workload.
	queueSize := workers * 4
	if queueSize < 8 {
		queueSize = 8
	}

	p := &Pool{
		workers:    workers,
		workQueues: make([]chan func(), workers),
		done:       make(chan struct{}),
	}
	for i := 0; i < workers; i++ {
		p.workQueues[i] = make(chan func(), queueSize)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker(i)
	}
	return p
}

// worker is the main loop for each worker goroutine.
func (p *Pool) worker(id int) {
	defer p.wg.Done()

	myQueue := p.workQueues[id]
	for {
		select {
		case <-p.done:
			p.drainQueue(myQueue)
			return

		case work := <-myQueue:
			if work != nil {
				work()
			}

		default:
			if stolen := p.steal(id); stolen != nil {
				stolen()
			} else {
				// No work available anywhere, block on own queue.
				select {
				case <-p.done:
					p.drainQueue(myQueue)
					return
				case work := <-myQueue:
					if work != nil {
						work()
					}
				}
			}
		}
	}
}

// drainQueue executes all remaining work in a queue.
func (p *Pool) drainQueue(queue chan func()) {
	for {
		select {
		case work := <-queue:
			if work != nil {
				work()
			}
		default:
			return
		}
	}
}

// steal attempts to take work from another worker's queue.
// Returns nil if no work is available.
func (p *Pool) steal(myID int) func() {
	for i := 0; i < p.workers; i++ {
		if i == myID {
			continue
		}
		select {
		case work := <-p.workQueues[i]:
			return work
		default:
			// Queue is empty, try next.
		}
	}
	return nil
}

// ExecuteAll distributes work across workers and waits for all to complete.
// The calling goroutine participates while it waits: queued items run on the
// caller whenever no worker has picked them up yet. A batch submitted from
// inside a work item therefore always makes progress, even on a one-worker
// pool whose only worker is the submitter itself.
// Items that find every queue full run inline immediately; if the pool is
// closed, all items run inline.
func (p *Pool) ExecuteAll(work []func()) {
	if len(work) == 0 {
		return
	}
	if !p.running.Load() {
		for _, fn := range work {
			fn()
		}
		return
	}

	var remaining atomic.Int64
	remaining.Store(int64(len(work)))
	batchDone := make(chan struct{})

	start := int(p.next.Add(1))
	for i, fn := range work {
		workFn := fn
		wrapped := func() {
			defer func() {
				if remaining.Add(-1) == 0 {
					close(batchDone)
				}
			}()
			workFn()
		}
		if !p.trySubmit(start+i, wrapped) {
			// All queues full (or pool closing): run on the caller.
			wrapped()
		}
	}

	// Help until the batch completes. Draining any queue is fine: items of
	// other batches run here at worst, and their own callers are helping too.
	// steal(-1) matches no worker id, so every queue is a candidate.
	for {
		select {
		case <-batchDone:
			return
		default:
		}
		if item := p.steal(-1); item != nil {
			item()
			continue
		}
		select {
		case <-batchDone:
			return
		default:
			// Queues momentarily empty, batch items still running on
			// workers. Yield instead of blocking: a running item may
			// enqueue more work this goroutine must stay able to drain.
			runtime.Gosched()
		}
	}
}

// trySubmit offers fn to each worker queue once, starting at a rotating
// offset. It never blocks.
func (p *Pool) trySubmit(start int, fn func()) bool {
	if !p.running.Load() {
		return false
	}
	for k := 0; k < p.workers; k++ {
		q := p.workQueues[(start+k)%p.workers]
		select {
		case q <- fn:
			return true
		default:
		}
	}
	return false
}

// Submit sends a single fire-and-forget work item to the pool.
// If every queue is full or the pool is closed, the item runs inline.
func (p *Pool) Submit(fn func()) {
	if fn == nil {
		return
	}
	if !p.trySubmit(int(p.next.Add(1)), fn) {
		fn()
	}
}

// Close gracefully shuts down the pool.
// It stops accepting new work, waits for all queued work to complete,
// and then stops all workers. Close is safe to call multiple times.
func (p *Pool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.workers
}

// IsRunning returns true if the pool is still accepting work.
func (p *Pool) IsRunning() bool {
	return p.running.Load()
}
