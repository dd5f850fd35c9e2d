package engine

import (
    "github.com/SuperV1234/orizzonte/scheduler"
    "github.com/SuperV1234/orizzonte/unit"
)

// Wait appends a synthetic sink stage below n, drives the graph, blocks
// the calling goroutine until the sink observes the final value, and
// returns it. The sink's latch is signalled by whichever worker delivers
// the final value (for a terminal join, the last finisher).
func Wait[Out any](n Node[Out], s scheduler.Scheduler) Out {
    var out Out
    l := newLatch()

    sink := Transform(n, func(o Out) unit.Unit {
        out = o
        l.countDown()
        return unit.Unit{}
    })

    sink.WalkUp(s, func(unit.Unit) {})
    l.wait()
    return out
}
