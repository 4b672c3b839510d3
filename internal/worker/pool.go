// Package worker runs jobs on a fixed number of goroutines.
package worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/osse101/shooter-mock-api/internal/logger"
)

// ErrPoolClosed is returned by Enqueue after Wait or Stop
var ErrPoolClosed = errors.New("worker pool closed")

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// JobFunc adapts a function to Job
type JobFunc func(ctx context.Context) error

func (f JobFunc) Process(ctx context.Context) error { return f(ctx) }

// Pool represents a worker pool
type Pool struct {
	workers  int
	jobQueue chan Job
	wg       sync.WaitGroup
	quit     chan struct{}

	closeOnce sync.Once
	stopOnce  sync.Once
	closed    atomic.Bool
	mu        sync.RWMutex

	processed atomic.Int64
	failed    atomic.Int64
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{
		workers:  workers,
		jobQueue: make(chan Job, queueSize),
		quit:     make(chan struct{}),
	}
}

// Start starts the workers. Jobs receive ctx.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}
}

// worker is the worker loop
func (p *Pool) worker(ctx context.Context) {
	defer p.wg.Done()
	for {
		select {
		case job, ok := <-p.jobQueue:
			if !ok {
				return
			}
			p.run(ctx, job)
		case <-p.quit:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (p *Pool) run(ctx context.Context, job Job) {
	defer func() {
		if r := recover(); r != nil {
			p.failed.Add(1)
			logger.FromContext(ctx).Error(LogMsgWorkerJobPanicked, "panic", r)
		}
	}()

	p.processed.Add(1)
	if err := job.Process(ctx); err != nil {
		// Log error but don't crash worker
		p.failed.Add(1)
		logger.FromContext(ctx).Debug(LogMsgWorkerJobFailed, "error", err)
	}
}

// Enqueue adds a job to the queue, blocking while it is full
func (p *Pool) Enqueue(ctx context.Context, job Job) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed.Load() {
		return ErrPoolClosed
	}

	select {
	case p.jobQueue <- job:
		return nil
	case <-p.quit:
		return ErrPoolClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Wait stops accepting jobs and blocks until the queue is drained
func (p *Pool) Wait() {
	p.closeQueue()
	p.wg.Wait()
}

// Stop stops the workers without draining and waits for in-flight jobs
func (p *Pool) Stop() {
	p.stopOnce.Do(func() { close(p.quit) })
	p.closeQueue()
	p.wg.Wait()
}

func (p *Pool) closeQueue() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		// Enqueue holds the read lock while sending
		p.mu.Lock()
		close(p.jobQueue)
		p.mu.Unlock()
	})
}

// Processed returns how many jobs have been started
func (p *Pool) Processed() int64 {
	return p.processed.Load()
}

// Failed returns how many jobs returned an error or panicked
func (p *Pool) Failed() int64 {
	return p.failed.Load()
}
