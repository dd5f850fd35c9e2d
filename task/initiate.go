package task

import (
    "github.com/SuperV1234/orizzonte/internal/engine"
    "github.com/SuperV1234/orizzonte/tuple"
    "github.com/SuperV1234/orizzonte/unit"
)

// Each function in this file has a suffix for arity indicating the
// number of parallel sub-stages the graph fans out into from its entry
// point, matching the arity-suffixed convention of the tuple and
// fun/partial packages.

// start is the stem every graph grows from: the root sentinel followed
// by a scheduler boundary, so the first real stage always runs as a
// scheduler work item rather than on the goroutine that calls Get.
func start() engine.Node[unit.Unit] {
    return engine.Schedule(engine.Root())
}

// Initiate begins a graph with a single input-less stage.
func Initiate[A any](f func() A) Graph[unit.Unit, A] {
    return Graph[unit.Unit, A]{
        leaf: engine.Transform(start(), engine.Nullary(f)),
    }
}

// Initiate2 begins a graph with two parallel input-less sub-stages whose
// results join positionally into a pair.
func Initiate2[A, B any](
    fa func() A,
    fb func() B,
) Graph[unit.Unit, tuple.T2[A, B]] {
    return Graph[unit.Unit, tuple.T2[A, B]]{
        leaf: engine.Join2(start(), engine.Nullary(fa), engine.Nullary(fb)),
    }
}

// Initiate3 is like [Initiate2] with three sub-stages.
func Initiate3[A, B, C any](
    fa func() A,
    fb func() B,
    fc func() C,
) Graph[unit.Unit, tuple.T3[A, B, C]] {
    return Graph[unit.Unit, tuple.T3[A, B, C]]{
        leaf: engine.Join3(start(),
            engine.Nullary(fa), engine.Nullary(fb), engine.Nullary(fc)),
    }
}

// Initiate4 is like [Initiate2] with four sub-stages.
func Initiate4[A, B, C, D any](
    fa func() A,
    fb func() B,
    fc func() C,
    fd func() D,
) Graph[unit.Unit, tuple.T4[A, B, C, D]] {
    return Graph[unit.Unit, tuple.T4[A, B, C, D]]{
        leaf: engine.Join4(start(),
            engine.Nullary(fa), engine.Nullary(fb),
            engine.Nullary(fc), engine.Nullary(fd)),
    }
}

// Initiate5 is like [Initiate2] with five sub-stages.
func Initiate5[A, B, C, D, E any](
    fa func() A,
    fb func() B,
    fc func() C,
    fd func() D,
    fe func() E,
) Graph[unit.Unit, tuple.T5[A, B, C, D, E]] {
    return Graph[unit.Unit, tuple.T5[A, B, C, D, E]]{
        leaf: engine.Join5(start(),
            engine.Nullary(fa), engine.Nullary(fb), engine.Nullary(fc),
            engine.Nullary(fd), engine.Nullary(fe)),
    }
}

// Initiate6 is like [Initiate2] with six sub-stages.
func Initiate6[A, B, C, D, E, F any](
    fa func() A,
    fb func() B,
    fc func() C,
    fd func() D,
    fe func() E,
    ff func() F,
) Graph[unit.Unit, tuple.T6[A, B, C, D, E, F]] {
    return Graph[unit.Unit, tuple.T6[A, B, C, D, E, F]]{
        leaf: engine.Join6(start(),
            engine.Nullary(fa), engine.Nullary(fb), engine.Nullary(fc),
            engine.Nullary(fd), engine.Nullary(fe), engine.Nullary(ff)),
    }
}

// Initiate7 is like [Initiate2] with seven sub-stages.
func Initiate7[A, B, C, D, E, F, G any](
    fa func() A,
    fb func() B,
    fc func() C,
    fd func() D,
    fe func() E,
    ff func() F,
    fg func() G,
) Graph[unit.Unit, tuple.T7[A, B, C, D, E, F, G]] {
    return Graph[unit.Unit, tuple.T7[A, B, C, D, E, F, G]]{
        leaf: engine.Join7(start(),
            engine.Nullary(fa), engine.Nullary(fb), engine.Nullary(fc),
            engine.Nullary(fd), engine.Nullary(fe), engine.Nullary(ff),
            engine.Nullary(fg)),
    }
}

// Initiate8 is like [Initiate2] with eight sub-stages.
func Initiate8[A, B, C, D, E, F, G, H any](
    fa func() A,
    fb func() B,
    fc func() C,
    fd func() D,
    fe func() E,
    ff func() F,
    fg func() G,
    fh func() H,
) Graph[unit.Unit, tuple.T8[A, B, C, D, E, F, G, H]] {
    return Graph[unit.Unit, tuple.T8[A, B, C, D, E, F, G, H]]{
        leaf: engine.Join8(start(),
            engine.Nullary(fa), engine.Nullary(fb), engine.Nullary(fc),
            engine.Nullary(fd), engine.Nullary(fe), engine.Nullary(ff),
            engine.Nullary(fg), engine.Nullary(fh)),
    }
}

// InitiateSlice begins a graph with a homogeneous fan-out of arbitrary
// width: one parallel sub-stage per function, joined into a slice
// indexed like fs.
func InitiateSlice[A any](fs []func() A) Graph[unit.Unit, []A] {
    adapted := make([]func(unit.Unit) A, 0, len(fs))
    for _, f := range fs {
        adapted = append(adapted, engine.Nullary(f))
    }
    return Graph[unit.Unit, []A]{
        leaf: engine.JoinSlice(start(), adapted),
    }
}
