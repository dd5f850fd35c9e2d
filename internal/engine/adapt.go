package engine

import (
    "github.com/SuperV1234/orizzonte/unit"
)

// Every node executes stage functions of the uniform one-input,
// one-output shape func(In) Out. These adapters lift the three
// degenerate user-function shapes into it: a unit input is elided before
// the user function runs, and a unit output is injected after a void
// user function returns. Selection happens statically at the call site
// that composes the stage, never at execution time.

// Nullary adapts an input-less stage function: the unit input is elided.
func Nullary[Out any](f func() Out) func(unit.Unit) Out {
    return func(unit.Unit) Out {
        return f()
    }
}

// Consume adapts a void stage function: a unit output is injected.
func Consume[In any](f func(In)) func(In) unit.Unit {
    return func(in In) unit.Unit {
        f(in)
        return unit.Unit{}
    }
}

// Thunk adapts a stage function with neither input nor output.
func Thunk(f func()) func(unit.Unit) unit.Unit {
    return func(unit.Unit) unit.Unit {
        f()
        return unit.Unit{}
    }
}
