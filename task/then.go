package task

import (
    "github.com/SuperV1234/orizzonte/internal/engine"
    "github.com/SuperV1234/orizzonte/tuple"
)

// Go methods cannot introduce type parameters of their own, so the
// combinators that change a graph's output type are free functions
// taking the graph as their first argument, with the same arity suffix
// convention as the Initiate family. Each consumes the graph it is given
// and returns the grown graph.

// Then appends a single synchronous stage: the new graph applies f to
// the receiver graph's output, on the same goroutine that produced it.
func Then[In, Out, Next any](
    g Graph[In, Out],
    f func(Out) Next,
) Graph[In, Next] {
    return Graph[In, Next]{leaf: engine.Transform(g.leaf, f)}
}

// Then2 appends a fan-out of two parallel sub-stages, each applied to
// the receiver graph's output, whose results join positionally into a
// pair. Any of the sub-stages may turn out to be the one that continues
// downstream; all of them have finished by the time the pair is
// observed.
func Then2[In, Out, A, B any](
    g Graph[In, Out],
    fa func(Out) A,
    fb func(Out) B,
) Graph[In, tuple.T2[A, B]] {
    return Graph[In, tuple.T2[A, B]]{leaf: engine.Join2(g.leaf, fa, fb)}
}

// Then3 is like [Then2] with three sub-stages.
func Then3[In, Out, A, B, C any](
    g Graph[In, Out],
    fa func(Out) A,
    fb func(Out) B,
    fc func(Out) C,
) Graph[In, tuple.T3[A, B, C]] {
    return Graph[In, tuple.T3[A, B, C]]{leaf: engine.Join3(g.leaf, fa, fb, fc)}
}

// Then4 is like [Then2] with four sub-stages.
func Then4[In, Out, A, B, C, D any](
    g Graph[In, Out],
    fa func(Out) A,
    fb func(Out) B,
    fc func(Out) C,
    fd func(Out) D,
) Graph[In, tuple.T4[A, B, C, D]] {
    return Graph[In, tuple.T4[A, B, C, D]]{
        leaf: engine.Join4(g.leaf, fa, fb, fc, fd),
    }
}

// Then5 is like [Then2] with five sub-stages.
func Then5[In, Out, A, B, C, D, E any](
    g Graph[In, Out],
    fa func(Out) A,
    fb func(Out) B,
    fc func(Out) C,
    fd func(Out) D,
    fe func(Out) E,
) Graph[In, tuple.T5[A, B, C, D, E]] {
    return Graph[In, tuple.T5[A, B, C, D, E]]{
        leaf: engine.Join5(g.leaf, fa, fb, fc, fd, fe),
    }
}

// Then6 is like [Then2] with six sub-stages.
func Then6[In, Out, A, B, C, D, E, F any](
    g Graph[In, Out],
    fa func(Out) A,
    fb func(Out) B,
    fc func(Out) C,
    fd func(Out) D,
    fe func(Out) E,
    ff func(Out) F,
) Graph[In, tuple.T6[A, B, C, D, E, F]] {
    return Graph[In, tuple.T6[A, B, C, D, E, F]]{
        leaf: engine.Join6(g.leaf, fa, fb, fc, fd, fe, ff),
    }
}

// Then7 is like [Then2] with seven sub-stages.
func Then7[In, Out, A, B, C, D, E, F, G any](
    g Graph[In, Out],
    fa func(Out) A,
    fb func(Out) B,
    fc func(Out) C,
    fd func(Out) D,
    fe func(Out) E,
    ff func(Out) F,
    fg func(Out) G,
) Graph[In, tuple.T7[A, B, C, D, E, F, G]] {
    return Graph[In, tuple.T7[A, B, C, D, E, F, G]]{
        leaf: engine.Join7(g.leaf, fa, fb, fc, fd, fe, ff, fg),
    }
}

// Then8 is like [Then2] with eight sub-stages.
func Then8[In, Out, A, B, C, D, E, F, G, H any](
    g Graph[In, Out],
    fa func(Out) A,
    fb func(Out) B,
    fc func(Out) C,
    fd func(Out) D,
    fe func(Out) E,
    ff func(Out) F,
    fg func(Out) G,
    fh func(Out) H,
) Graph[In, tuple.T8[A, B, C, D, E, F, G, H]] {
    return Graph[In, tuple.T8[A, B, C, D, E, F, G, H]]{
        leaf: engine.Join8(g.leaf, fa, fb, fc, fd, fe, ff, fg, fh),
    }
}

// WhenAllSlice appends a homogeneous fan-out of arbitrary width: one
// parallel sub-stage per function in fs, each applied to the receiver
// graph's output, joined into a slice indexed like fs. Use this where
// the fan-out width is a runtime quantity, or wider than the fixed-arity
// tuple types go.
func WhenAllSlice[In, Out, R any](
    g Graph[In, Out],
    fs []func(Out) R,
) Graph[In, []R] {
    return Graph[In, []R]{leaf: engine.JoinSlice(g.leaf, fs)}
}
