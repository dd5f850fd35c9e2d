// Package safe extends the task package with an opt-in error channel.
//
// The core task engine assumes total stage functions and has no error
// plumbing. This package layers short-circuiting (value, error)
// propagation on top of the core's public surface, using the fun/result
// sum type as the value that flows between stages: once any stage
// returns a non-nil error, downstream chained stages are skipped and the
// error surfaces from [Graph.Get].
//
// Fan-out is collecting rather than short-circuiting: every slot of a
// WhenAll is filled (a sub-stage whose input is an upstream error is not
// called, and its slot carries that error) and the individual outcomes
// join into a tuple of results, since
// "some succeeded, some failed" is itself meaningful data for a join.
// Callers wanting all-or-nothing semantics can inspect the joined tuple
// in the next stage.
//
// A stage that panics is still a panic, not an error; wrap suspect
// functions with must.CatchFunc before composing them.
package safe

import (
    "github.com/SuperV1234/orizzonte/fun/result"
    "github.com/SuperV1234/orizzonte/scheduler"
    "github.com/SuperV1234/orizzonte/task"
    "github.com/SuperV1234/orizzonte/tuple"
    "github.com/SuperV1234/orizzonte/unit"
)

// Graph is a composed task graph whose stages may fail. It wraps a core
// graph carrying a [result.Result] of the output, and shares the core
// Graph's execute-at-most-once contract.
type Graph[In any, Out any] struct {
    g task.Graph[In, result.Result[Out]]
}

// sub lifts one fallible stage function into a stage over results:
// an upstream error passes through untouched, otherwise f runs.
func sub[Out, X any](f func(Out) (X, error)) func(result.Result[Out]) result.Result[X] {
    wrapped := result.WrapFunc(f)
    return func(r result.Result[Out]) result.Result[X] {
        return result.Then(r, wrapped)
    }
}

// Initiate begins a fallible graph with a single input-less stage.
func Initiate[A any](f func() (A, error)) Graph[unit.Unit, A] {
    return Graph[unit.Unit, A]{
        g: task.Initiate(func() result.Result[A] {
            return result.New(f())
        }),
    }
}

// Lift adapts an infallible core graph into a fallible one, so it can
// continue with stages that may fail.
func Lift[In, Out any](g task.Graph[In, Out]) Graph[In, Out] {
    return Graph[In, Out]{g: task.Then(g, result.Some[Out])}
}

// Then appends a single fallible stage. If any earlier stage failed, f
// is skipped and the error propagates.
func Then[In, Out, Next any](
    g Graph[In, Out],
    f func(Out) (Next, error),
) Graph[In, Next] {
    return Graph[In, Next]{g: task.Then(g.g, sub(f))}
}

// Get drives the graph on the given scheduler, blocks until done, and
// returns the final value or the first error any stage produced. Get
// consumes the graph.
func (g Graph[In, Out]) Get(s scheduler.Scheduler) (Out, error) {
    return g.g.Get(s).Unpack()
}

// WhenAll2 appends a fan-out of two parallel fallible sub-stages,
// collecting each one's outcome into a pair of results.
func WhenAll2[In, Out, A, B any](
    g Graph[In, Out],
    fa func(Out) (A, error),
    fb func(Out) (B, error),
) Graph[In, tuple.T2[result.Result[A], result.Result[B]]] {
    joined := task.Then2(g.g, sub(fa), sub(fb))
    return Graph[In, tuple.T2[result.Result[A], result.Result[B]]]{
        g: task.Then(joined, result.Some[tuple.T2[result.Result[A], result.Result[B]]]),
    }
}

// WhenAll3 is like [WhenAll2] with three sub-stages.
func WhenAll3[In, Out, A, B, C any](
    g Graph[In, Out],
    fa func(Out) (A, error),
    fb func(Out) (B, error),
    fc func(Out) (C, error),
) Graph[In, tuple.T3[result.Result[A], result.Result[B], result.Result[C]]] {
    joined := task.Then3(g.g, sub(fa), sub(fb), sub(fc))
    return Graph[In, tuple.T3[result.Result[A], result.Result[B], result.Result[C]]]{
        g: task.Then(joined,
            result.Some[tuple.T3[result.Result[A], result.Result[B], result.Result[C]]]),
    }
}

// WhenAll4 is like [WhenAll2] with four sub-stages.
func WhenAll4[In, Out, A, B, C, D any](
    g Graph[In, Out],
    fa func(Out) (A, error),
    fb func(Out) (B, error),
    fc func(Out) (C, error),
    fd func(Out) (D, error),
) Graph[In, tuple.T4[result.Result[A], result.Result[B], result.Result[C], result.Result[D]]] {
    joined := task.Then4(g.g, sub(fa), sub(fb), sub(fc), sub(fd))
    return Graph[In, tuple.T4[result.Result[A], result.Result[B], result.Result[C], result.Result[D]]]{
        g: task.Then(joined,
            result.Some[tuple.T4[result.Result[A], result.Result[B], result.Result[C], result.Result[D]]]),
    }
}

// WhenAllSlice appends a homogeneous fan-out of arbitrary width,
// collecting each sub-stage's outcome into a slice of results indexed
// like fs.
func WhenAllSlice[In, Out, R any](
    g Graph[In, Out],
    fs []func(Out) (R, error),
) Graph[In, []result.Result[R]] {
    adapted := make([]func(result.Result[Out]) result.Result[R], 0, len(fs))
    for _, f := range fs {
        adapted = append(adapted, sub(f))
    }
    joined := task.WhenAllSlice(g.g, adapted)
    return Graph[In, []result.Result[R]]{
        g: task.Then(joined, result.Some[[]result.Result[R]]),
    }
}
