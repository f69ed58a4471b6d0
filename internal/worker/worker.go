package worker

import "sync"

// Task represents a unit of background work, such as delivering a
// notification mail.
type Task func()

// Pool defines a bounded background worker pool. Submit never blocks the
// caller; when the queue is full the task is dropped and Submit reports
// false.
type Pool interface {
	Submit(Task) bool
	Stop()
}

// NewPool creates a pool with n workers and a queue of n*queuePerWorker
// pending tasks. n<=0 defaults to 1.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{jobs: make(chan Task, n*queuePerWorker)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				if job != nil {
					job()
				}
			}
		}()
	}
	return p
}

const queuePerWorker = 16

type pool struct {
	jobs chan Task
	wg   sync.WaitGroup
}

func (p *pool) Submit(t Task) bool {
	select {
	case p.jobs <- t:
		return true
	default:
		return false
	}
}

func (p *pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}
