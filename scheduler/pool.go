package scheduler

import (
    "context"
    "sync"
)

// Pool is a bounded worker pool: a fixed number of goroutines draining a
// buffered queue of work items. Zero value is not useful; construct with
// [NewPool].
type Pool struct {
    ctx   context.Context
    queue chan func()
    wg    sync.WaitGroup
}

// NewPool starts a pool of the given number of worker goroutines sharing
// a queue with room for backlog pending work items. The context governs
// the workers' lifetime: once it is cancelled, workers finish their
// current item and exit.
func NewPool(ctx context.Context, workers int, backlog int) *Pool {
    p := &Pool{
        ctx: ctx,
        queue: make(chan func(), backlog),
    }
    for i := 0; i < workers; i++ {
        p.wg.Add(1)
        go p.work()
    }
    return p
}

func (p *Pool) work() {
    defer p.wg.Done()
    for {
        select {
            case <- p.ctx.Done():
                return
            case w, ok := <- p.queue:
                if !ok { return }
                w()
        }
    }
}

// Submit queues a work item for one of the pool's workers, blocking
// while the backlog is full. After the pool's context has been
// cancelled, the item is silently dropped: a graph submitted to a dead
// pool never completes, so cancel the context only once every graph
// driven through this pool has finished.
func (p *Pool) Submit(work func()) {
    select {
        case <- p.ctx.Done():
        case p.queue <- work:
    }
}

// Scheduler exposes the pool in the shape the task engine consumes.
func (p *Pool) Scheduler() Scheduler {
    return p.Submit
}

// Close stops the workers after the queue drains and blocks until they
// have all exited. The caller must ensure no Submit call is in flight or
// made afterwards.
func (p *Pool) Close() {
    close(p.queue)
    p.wg.Wait()
}
