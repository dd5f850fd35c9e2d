// Package task implements statically-composed asynchronous task graphs.
//
// A graph is a directed acyclic chain of computations whose topology is
// fixed at composition time: a single entry point ([Initiate]), linear
// stages appended with [Then], fan-out stages whose sub-computations run
// in parallel and join positionally into a tuple ([Then2] through
// [Then8], or [WhenAllSlice] for homogeneous fan-out of arbitrary
// width), and a terminal operation ([Graph.Get]) that drives the graph
// to completion and returns the final value.
//
// Concurrency is pluggable: the engine never starts a goroutine itself,
// it submits nullary work items to a [scheduler.Scheduler] supplied by
// the caller at Get time. Stages without a scheduler boundary between
// them run synchronously on whichever goroutine delivered their input.
//
// Stages that neither take nor produce useful values use [unit.Unit] as
// input or output; [Void] and [VoidIn] adapt ordinary void functions to
// that shape.
//
// A graph is intended to be executed at most once: Get consumes it.
// Re-executing a graph that contains a fan-out stage panics; re-executing
// a purely linear chain is not detected. Stage functions are
// assumed total: nothing in the engine recovers a panic, so a stage that
// panics on a scheduler goroutine ends the program, and under
// [scheduler.Inline] the panic unwinds out of Get. Callers
// with fallible stages can wrap them with must.CatchFunc and propagate
// a result value, or use the task/safe package.
package task

import (
    "github.com/SuperV1234/orizzonte/internal/engine"
    "github.com/SuperV1234/orizzonte/scheduler"
    "github.com/SuperV1234/orizzonte/unit"
)

// Graph is a composed task graph awaiting execution. In is the input
// type of the graph's first stage (always [unit.Unit] for graphs built
// by the Initiate family), Out the output type of its last stage.
//
// The zero value is not useful; graphs are built by [Initiate] and grown
// by [Then] and its siblings, each of which consumes its receiver graph
// and returns a longer one.
type Graph[In any, Out any] struct {
    leaf engine.Node[Out]
}

// Get drives the graph to completion on the given scheduler, blocks the
// calling goroutine until the final stage has run, and returns its
// value. Get consumes the graph: a graph must be executed at most once.
func (g Graph[In, Out]) Get(s scheduler.Scheduler) Out {
    return engine.Wait(g.leaf, s)
}

// GetVoid is [Graph.Get] for graphs whose final output is [unit.Unit],
// discarding the value so call sites need not bind it.
func (g Graph[In, Out]) GetVoid(s scheduler.Scheduler) {
    g.Get(s)
}

// Void adapts an input-less, void user function into stage shape, so it
// can appear in a Then or Initiate call whose other functions produce
// values.
func Void(f func()) func(unit.Unit) unit.Unit {
    return engine.Thunk(f)
}

// VoidIn adapts a void user function that consumes its input into stage
// shape.
func VoidIn[In any](f func(In)) func(In) unit.Unit {
    return engine.Consume(f)
}
