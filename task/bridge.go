package task

import (
    "context"

    "github.com/SuperV1234/orizzonte/fun/future"
    "github.com/SuperV1234/orizzonte/fun/promise"
    "github.com/SuperV1234/orizzonte/scheduler"
)

// Promise adapts a graph and a scheduler into a [promise.P] that drives
// the graph when first computed. The graph is consumed by that
// computation, so the promise inherits the compute-at-most-once
// contract; a promise implementation that caches (such as a future) is
// the natural way to hold the eventual value.
func Promise[In, Out any](g Graph[In, Out], s scheduler.Scheduler) promise.P[Out] {
    return promise.FromFunc(func() Out {
        return g.Get(s)
    })
}

// Future begins executing the graph on the given scheduler immediately,
// in a new goroutine, and returns a [future.F] handle on the eventual
// final value. The context governs only the collecting side, the same
// way as [future.NewAsync]: cancelling it abandons the handle, it does
// not reach into the running graph.
func Future[In, Out any](
    ctx context.Context,
    g Graph[In, Out],
    s scheduler.Scheduler,
) future.F[Out] {
    return future.NewAsync(ctx, Promise(g, s))
}
