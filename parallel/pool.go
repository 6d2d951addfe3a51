// Package parallel runs independent jobs over a fixed set of workers.
package parallel

import (
	"runtime"
	"sync"
)

type (
	// WorkerFunc submits one job to the pool.
	WorkerFunc func(func())
	// WaitFunc blocks until submitted jobs finish; done also closes the
	// pool to new jobs first.
	WaitFunc func(done bool)
	// CancelFunc closes the pool to new jobs.
	CancelFunc func()
)

type Pool struct {
	wg     sync.WaitGroup
	Do     WorkerFunc
	Wait   WaitFunc
	Cancel CancelFunc
}

// Start launches a pool of numWorkers workers. A count below one means
// one worker per available CPU; a count of exactly one degenerates to
// running jobs inline on the submitting goroutine.
func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{
		Do: func(f func()) {
			f()
		},
		Wait:   func(bool) {},
		Cancel: func() {},
	}

	if numWorkers > 1 {
		jobs := make(chan func(), numWorkers)

		pool.wg.Add(numWorkers)
		for i := 0; i < numWorkers; i++ {
			go func() {
				defer pool.wg.Done()
				for f := range jobs {
					f()
				}
			}()
		}

		pool.Do = func(f func()) {
			jobs <- f
		}
		pool.Cancel = sync.OnceFunc(func() { close(jobs) })
		pool.Wait = func(done bool) {
			if done {
				pool.Cancel()
			}
			pool.wg.Wait()
		}
	}

	return pool
}
