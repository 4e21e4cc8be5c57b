package caw

import (
	"github.com/alitto/pond/v2"
	"github.com/pkg/errors"
)

// Pool runs the data-parallel passes. One pool can serve many chunks
// concurrently; every parallelFor call waits only for its own tasks.
type Pool struct {
	p pond.Pool
}

// NewPool starts a pool of at most workers concurrent tasks.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = Options{}.withDefaults().Workers
	}
	return &Pool{p: pond.NewPool(workers)}
}

// Close waits for running tasks and stops the workers.
func (p *Pool) Close() { p.p.StopAndWait() }

// parallelFor splits [0,n) into batches, runs fn on each and returns once
// every batch has finished. A panicking batch is reported as an error and
// the caller must discard whatever the batches wrote.
func (p *Pool) parallelFor(n, batch int, fn func(lo, hi int)) error {
	if n == 0 {
		return nil
	}
	if batch <= 0 {
		batch = n
	}
	group := p.p.NewGroup()
	for lo := 0; lo < n; lo += batch {
		lo, hi := lo, min(lo+batch, n)
		group.Submit(func() { fn(lo, hi) })
	}
	// Wait returns on the first failed batch while others may still be
	// writing, so on error the caller's buffers must never be reused.
	if err := group.Wait(); err != nil {
		return errors.Wrap(err, "worker task failed")
	}
	return nil
}
