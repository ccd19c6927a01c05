// Package worker provides a generic worker pool for fanning work out over a
// fixed number of goroutines.
package worker

import (
	"context"
	"sync"
)

// Job represents a unit of work with an index for ordering.
type Job[T any] struct {
	Index int
	Data  T
}

// Result represents the outcome of processing a Job.
type Result[T any] struct {
	Index int
	Value T
	Err   error
}

// ProcessFunc processes a job and returns a result. ctx is cancelled when the
// pool is cancelled.
type ProcessFunc[I, O any] func(ctx context.Context, job Job[I]) (O, error)

// ProgressFunc is called after each job completes.
type ProgressFunc func(completed, total int)

// Pool manages concurrent job processing with a fixed number of workers.
type Pool[I, O any] struct {
	workers    int
	process    ProcessFunc[I, O]
	onProgress ProgressFunc
	jobChan    chan Job[I]
	resultChan chan Result[O]
	wg         sync.WaitGroup
	ctx        context.Context
	cancel     context.CancelFunc
}

// PoolOptions configures pool behavior.
type PoolOptions struct {
	Workers    int
	BufferSize int // If 0, defaults to Workers
}

// NewPool creates a pool bound to ctx.
func NewPool[I, O any](ctx context.Context, opts PoolOptions, process ProcessFunc[I, O]) *Pool[I, O] {
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.BufferSize <= 0 {
		opts.BufferSize = opts.Workers
	}

	ctx, cancel := context.WithCancel(ctx)

	return &Pool[I, O]{
		workers:    opts.Workers,
		process:    process,
		jobChan:    make(chan Job[I], opts.BufferSize),
		resultChan: make(chan Result[O], opts.BufferSize),
		ctx:        ctx,
		cancel:     cancel,
	}
}

// SetProgressCallback sets a callback to be called after each job completes.
func (p *Pool[I, O]) SetProgressCallback(fn ProgressFunc) {
	p.onProgress = fn
}

// Start begins the worker pool processing.
func (p *Pool[I, O]) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool[I, O]) worker() {
	defer p.wg.Done()
	for {
		select {
		case <-p.ctx.Done():
			return
		case job, ok := <-p.jobChan:
			if !ok {
				return
			}
			value, err := p.process(p.ctx, job)
			select {
			case p.resultChan <- Result[O]{Index: job.Index, Value: value, Err: err}:
			case <-p.ctx.Done():
				return
			}
		}
	}
}

// Submit adds a job to the pool. It returns the context error if the pool is
// cancelled first.
func (p *Pool[I, O]) Submit(job Job[I]) error {
	select {
	case p.jobChan <- job:
		return nil
	case <-p.ctx.Done():
		return p.ctx.Err()
	}
}

// Close stops accepting new jobs.
func (p *Pool[I, O]) Close() {
	close(p.jobChan)
}

// Wait waits for all workers to complete and closes the results channel.
func (p *Pool[I, O]) Wait() {
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the results channel for reading.
func (p *Pool[I, O]) Results() <-chan Result[O] {
	return p.resultChan
}

// Cancel stops all workers immediately.
func (p *Pool[I, O]) Cancel() {
	p.cancel()
}

// Run submits all jobs, starts workers and collects results in order. Jobs
// not processed before cancellation have a zero Result with Err set.
func (p *Pool[I, O]) Run(jobs []Job[I]) []Result[O] {
	total := len(jobs)
	results := make([]Result[O], total)
	done := make([]bool, total)

	p.Start()

	go func() {
		for _, job := range jobs {
			if p.Submit(job) != nil {
				break
			}
		}
		p.Close()
		p.Wait()
	}()

	completed := 0
	for result := range p.Results() {
		if result.Index >= 0 && result.Index < total {
			results[result.Index] = result
			done[result.Index] = true
		}
		completed++
		if p.onProgress != nil {
			p.onProgress(completed, total)
		}
	}

	if err := p.ctx.Err(); err != nil {
		for i := range results {
			if !done[i] {
				results[i] = Result[O]{Index: i, Err: err}
			}
		}
	}
	p.cancel()
	return results
}

// Process creates a pool, processes all items and returns ordered results.
// It stops at the first error in index order.
func Process[I, O any](ctx context.Context, items []I, workers int, process ProcessFunc[I, O], onProgress ProgressFunc) ([]O, error) {
	if len(items) == 0 {
		return nil, nil
	}

	if workers > len(items) {
		workers = len(items)
	}

	jobs := make([]Job[I], len(items))
	for i, item := range items {
		jobs[i] = Job[I]{Index: i, Data: item}
	}

	pool := NewPool[I, O](ctx, PoolOptions{Workers: workers, BufferSize: len(items)}, process)
	pool.SetProgressCallback(onProgress)
	results := pool.Run(jobs)

	output := make([]O, len(results))
	for i, result := range results {
		if result.Err != nil {
			return nil, result.Err
		}
		output[i] = result.Value
	}

	return output, nil
}
