package parallel

// Range splitting: a workload over [begin, end) is the Go rendering of a
// splittable task. A range worth subdividing is cut into contiguous chunks,
// each dispatched as one independent work item; a range at or below the
// chunk size runs as a single item. Chunks never interleave, so consumers
// that care about ordering within a chunk (row sinks, for instance) see each
// sub-range delivered in order even though chunks complete in any order.

// RunRange executes fn over [begin, end), partitioned into contiguous
// sub-ranges distributed across the pool, and blocks until all of them
// completed. The calling goroutine participates when queues are saturated,
// so RunRange may be invoked from inside another RunRange workload.
func (p *Pool) RunRange(begin, end int, fn func(begin, end int)) {
	n := end - begin
	if n <= 0 {
		return
	}

	// A few chunks per worker keeps stealing effective when chunk costs are
	// uneven without drowning the queues in tiny tasks.
	chunks := p.workers * 4
	if chunks > n {
		chunks = n
	}
	if chunks <= 1 {
		fn(begin, end)
		return
	}

	size := (n + chunks - 1) / chunks
	work := make([]func(), 0, chunks)
	for lo := begin; lo < end; lo += size {
		hi := min(lo+size, end)
		l, h := lo, hi
		work = append(work, func() { fn(l, h) })
	}
	p.ExecuteAll(work)
}

// Serial runs range workloads immediately on the calling goroutine. It is
// the degenerate Parallel implementation, useful for deterministic debugging
// and for callers that are already inside a worker.
type Serial struct{}

// RunRange executes fn over the whole range in one call.
func (Serial) RunRange(begin, end int, fn func(begin, end int)) {
	if end-begin <= 0 {
		return
	}
	fn(begin, end)
}
