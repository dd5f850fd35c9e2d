package engine

import (
    "github.com/SuperV1234/orizzonte/scheduler"
)

// transform is a one-input, one-output stage wrapping a user function.
type transform[In any, Out any] struct {
    up Node[In]
    f  func(In) Out
}

// Transform appends a synchronous stage below up. The stage runs on
// whichever goroutine delivers its input; asynchrony is introduced only
// by the schedule node upstream of it.
func Transform[In any, Out any](up Node[In], f func(In) Out) Node[Out] {
    return &transform[In, Out]{up: up, f: f}
}

func (t *transform[In, Out]) WalkUp(s scheduler.Scheduler, next func(Out)) {
    t.up.WalkUp(s, func(in In) {
        t.execute(s, in, next)
    })
}

// The input needs no buffering: it is used synchronously to invoke the
// stage function, and the output is handed straight to the next step.
func (t *transform[In, Out]) execute(s scheduler.Scheduler, in In, next func(Out)) {
    next(t.f(in))
}

func (t *transform[In, Out]) Describe(visit func(string)) {
    t.up.Describe(visit)
    visit("then")
}
