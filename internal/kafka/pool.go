package kafka

import (
	"sync"
	"sync/atomic"
)

// Pool is a fixed-size worker pool. Jobs submitted after Close are dropped;
// jobs already queued are drained before the workers exit.
type Pool struct {
	jobs   chan func()
	wg     sync.WaitGroup
	closed atomic.Bool
	done   chan struct{}
}

func NewPool(n int) *Pool {
	if n < 1 {
		n = 1
	}
	p := &Pool{
		jobs: make(chan func(), n*2),
		done: make(chan struct{}),
	}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for job := range p.jobs {
		if job != nil {
			job()
		}
	}
}

func (p *Pool) Submit(job func()) {
	if p.closed.Load() {
		return
	}
	select {
	case p.jobs <- job:
	case <-p.done:
	}
}

func (p *Pool) Close() {
	if p.closed.Swap(true) {
		return
	}
	close(p.done)
	close(p.jobs)
}

func (p *Pool) Wait() {
	p.wg.Wait()
}
