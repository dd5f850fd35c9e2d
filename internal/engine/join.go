package engine

import (
    "fmt"
    "sync/atomic"

    "github.com/SuperV1234/orizzonte/scheduler"
    "github.com/SuperV1234/orizzonte/tuple"
)

// join is a fan-out stage: N sub-stages run in parallel over a shared
// buffered copy of the input, each writing one slot of the output, and
// whichever sub-stage finishes last continues downstream with the
// completed output.
//
// The arity-specific constructors (Join2 .. Join8, JoinSlice) bind the
// heterogeneous sub-stage functions into uniform slot-writer closures at
// construction time, so execution is arity-agnostic.
type join[In any, Out any] struct {
    up     Node[In]
    stages []func()

    // left counts unfinished sub-stages. The atomic decrement orders
    // each sub-stage's slot write before the last finisher's read of
    // the completed output, and the decrement to zero identifies the
    // unique goroutine that runs the continuation.
    left atomic.Int64

    // buf keeps the input alive until the last sub-stage has read it:
    // scheduled sub-stages may still be running after execute returns,
    // even though the final sub-stage runs inline.
    buf In
    out Out
}

func newJoin[In any, Out any](up Node[In], n int) *join[In, Out] {
    j := &join[In, Out]{
        up: up,
        stages: make([]func(), 0, n),
    }
    j.left.Store(int64(n))
    return j
}

func (j *join[In, Out]) WalkUp(s scheduler.Scheduler, next func(Out)) {
    j.up.WalkUp(s, func(in In) {
        j.execute(s, in, next)
    })
}

// execute buffers the input, then runs each sub-stage: all but the final
// one are submitted to the scheduler, and the final one runs inline so
// the graph makes progress even on a scheduler that supplies no
// concurrency. The sub-stage that decrements the counter to zero, which
// may be any of them, releases the buffered input and invokes the
// continuation. Slot writes made before a decrement are visible after
// the decrement to zero is observed.
func (j *join[In, Out]) execute(s scheduler.Scheduler, in In, next func(Out)) {
    if len(j.stages) == 0 {
        next(j.out)
        return
    }
    if j.left.Load() != int64(len(j.stages)) {
        panic("engine: join executed more than once")
    }

    j.buf = in

    last := len(j.stages) - 1
    for i := 0; i <= last; i++ {
        stage := j.stages[i]
        work := func() {
            stage()
            if j.left.Add(-1) == 0 {
                j.finish(next)
            }
        }
        if i == last {
            work()
        } else {
            s(work)
        }
    }
}

// finish runs on the last finisher only, after every sub-stage's final
// read of the buffered input.
func (j *join[In, Out]) finish(next func(Out)) {
    var released In
    j.buf = released
    next(j.out)
}

func (j *join[In, Out]) Describe(visit func(string)) {
    j.up.Describe(visit)
    visit(fmt.Sprintf("when_all(%d)", len(j.stages)))
}

// Join2 appends a fan-out of two sub-stages below up, joining their
// results positionally into a pair.
func Join2[In, A, B any](
    up Node[In],
    fa func(In) A,
    fb func(In) B,
) Node[tuple.T2[A, B]] {
    j := newJoin[In, tuple.T2[A, B]](up, 2)
    j.stages = append(j.stages,
        func() { j.out.A = fa(j.buf) },
        func() { j.out.B = fb(j.buf) },
    )
    return j
}

// Join3 is like [Join2] with three sub-stages.
func Join3[In, A, B, C any](
    up Node[In],
    fa func(In) A,
    fb func(In) B,
    fc func(In) C,
) Node[tuple.T3[A, B, C]] {
    j := newJoin[In, tuple.T3[A, B, C]](up, 3)
    j.stages = append(j.stages,
        func() { j.out.A = fa(j.buf) },
        func() { j.out.B = fb(j.buf) },
        func() { j.out.C = fc(j.buf) },
    )
    return j
}

// Join4 is like [Join2] with four sub-stages.
func Join4[In, A, B, C, D any](
    up Node[In],
    fa func(In) A,
    fb func(In) B,
    fc func(In) C,
    fd func(In) D,
) Node[tuple.T4[A, B, C, D]] {
    j := newJoin[In, tuple.T4[A, B, C, D]](up, 4)
    j.stages = append(j.stages,
        func() { j.out.A = fa(j.buf) },
        func() { j.out.B = fb(j.buf) },
        func() { j.out.C = fc(j.buf) },
        func() { j.out.D = fd(j.buf) },
    )
    return j
}

// Join5 is like [Join2] with five sub-stages.
func Join5[In, A, B, C, D, E any](
    up Node[In],
    fa func(In) A,
    fb func(In) B,
    fc func(In) C,
    fd func(In) D,
    fe func(In) E,
) Node[tuple.T5[A, B, C, D, E]] {
    j := newJoin[In, tuple.T5[A, B, C, D, E]](up, 5)
    j.stages = append(j.stages,
        func() { j.out.A = fa(j.buf) },
        func() { j.out.B = fb(j.buf) },
        func() { j.out.C = fc(j.buf) },
        func() { j.out.D = fd(j.buf) },
        func() { j.out.E = fe(j.buf) },
    )
    return j
}

// Join6 is like [Join2] with six sub-stages.
func Join6[In, A, B, C, D, E, F any](
    up Node[In],
    fa func(In) A,
    fb func(In) B,
    fc func(In) C,
    fd func(In) D,
    fe func(In) E,
    ff func(In) F,
) Node[tuple.T6[A, B, C, D, E, F]] {
    j := newJoin[In, tuple.T6[A, B, C, D, E, F]](up, 6)
    j.stages = append(j.stages,
        func() { j.out.A = fa(j.buf) },
        func() { j.out.B = fb(j.buf) },
        func() { j.out.C = fc(j.buf) },
        func() { j.out.D = fd(j.buf) },
        func() { j.out.E = fe(j.buf) },
        func() { j.out.F = ff(j.buf) },
    )
    return j
}

// Join7 is like [Join2] with seven sub-stages.
func Join7[In, A, B, C, D, E, F, G any](
    up Node[In],
    fa func(In) A,
    fb func(In) B,
    fc func(In) C,
    fd func(In) D,
    fe func(In) E,
    ff func(In) F,
    fg func(In) G,
) Node[tuple.T7[A, B, C, D, E, F, G]] {
    j := newJoin[In, tuple.T7[A, B, C, D, E, F, G]](up, 7)
    j.stages = append(j.stages,
        func() { j.out.A = fa(j.buf) },
        func() { j.out.B = fb(j.buf) },
        func() { j.out.C = fc(j.buf) },
        func() { j.out.D = fd(j.buf) },
        func() { j.out.E = fe(j.buf) },
        func() { j.out.F = ff(j.buf) },
        func() { j.out.G = fg(j.buf) },
    )
    return j
}

// Join8 is like [Join2] with eight sub-stages.
func Join8[In, A, B, C, D, E, F, G, H any](
    up Node[In],
    fa func(In) A,
    fb func(In) B,
    fc func(In) C,
    fd func(In) D,
    fe func(In) E,
    ff func(In) F,
    fg func(In) G,
    fh func(In) H,
) Node[tuple.T8[A, B, C, D, E, F, G, H]] {
    j := newJoin[In, tuple.T8[A, B, C, D, E, F, G, H]](up, 8)
    j.stages = append(j.stages,
        func() { j.out.A = fa(j.buf) },
        func() { j.out.B = fb(j.buf) },
        func() { j.out.C = fc(j.buf) },
        func() { j.out.D = fd(j.buf) },
        func() { j.out.E = fe(j.buf) },
        func() { j.out.F = ff(j.buf) },
        func() { j.out.G = fg(j.buf) },
        func() { j.out.H = fh(j.buf) },
    )
    return j
}

// JoinSlice appends a homogeneous fan-out of arbitrary width below up,
// joining the results into a slice indexed like fs. A nil or empty fs
// joins immediately into a nil slice.
func JoinSlice[In any, Out any](up Node[In], fs []func(In) Out) Node[[]Out] {
    j := newJoin[In, []Out](up, len(fs))
    if len(fs) > 0 {
        j.out = make([]Out, len(fs))
    }
    for i, f := range fs {
        i, f := i, f
        j.stages = append(j.stages, func() { j.out[i] = f(j.buf) })
    }
    return j
}
