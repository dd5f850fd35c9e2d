package engine

import (
    "sync"
)

// latch is a one-shot synchronization point: countDown sets it exactly
// once, wait blocks until it has been set. A second countDown is a logic
// error and panics, since each graph execution signals its terminal
// latch exactly once.
type latch struct {
    mtx      sync.Mutex
    cv       sync.Cond
    finished bool
}

func newLatch() *latch {
    l := &latch{}
    l.cv.L = &l.mtx
    return l
}

func (l *latch) countDown() {
    l.mtx.Lock()
    defer l.mtx.Unlock()
    if l.finished {
        panic("engine: latch counted down twice")
    }
    l.finished = true
    l.cv.Broadcast()
}

func (l *latch) wait() {
    l.mtx.Lock()
    defer l.mtx.Unlock()
    for !l.finished {
        l.cv.Wait()
    }
}
