// Package engine implements the execution engine behind the task
// package: the node variants making up a composed graph, the call
// adapters that elide unit values, and the terminal waiter.
//
// A graph is a chain of nodes built leaves-first, each node holding the
// node above it, so the leaf is the only value the caller ever sees.
// Execution is a two-phase dispatch: WalkUp climbs parent links to the
// root, folding each node's execute step into a downstream continuation
// as it goes, and the root then drives that accumulated continuation
// forward with a unit seed. Each node's execute step hands its output to
// the next step, recursively, so a linear chain runs as one synchronous
// call stack on whichever goroutine delivered its input; only schedule
// and join nodes introduce concurrency boundaries.
package engine

import (
    "github.com/SuperV1234/orizzonte/scheduler"
    "github.com/SuperV1234/orizzonte/unit"
)

// Node is one vertex of a composed graph, viewed from below. Out is the
// node's statically-known output type; its input type is known only to
// the node itself, which is what lets a heterogeneous chain hang off a
// single type parameter.
type Node[Out any] interface {
    // WalkUp climbs to the root, accumulating next (the downstream
    // continuation) and then executes top-down. next is invoked with
    // this node's output, on whatever goroutine produces it, exactly
    // once per call to WalkUp.
    WalkUp(s scheduler.Scheduler, next func(Out))

    // Describe visits the chain's node labels in root-to-leaf order
    // without executing anything.
    Describe(visit func(label string))
}

// root is the sentinel above the topmost real node. It produces unit.
type root struct{}

// Root returns the entry sentinel every graph hangs from.
func Root() Node[unit.Unit] {
    return root{}
}

// At the root there is nothing further up, so the downward wave begins:
// the accumulated continuation runs with a unit seed.
func (root) WalkUp(s scheduler.Scheduler, next func(unit.Unit)) {
    next(unit.Unit{})
}

func (root) Describe(visit func(string)) {
    visit("root")
}
