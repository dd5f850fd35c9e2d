package task

import (
    "strings"
)

// Shape is the static skeleton of a composed graph: the kind label of
// each node ("root", "schedule", "then", "when_all(n)") in root-to-leaf
// order. A composed graph is always a single chain of nodes, so the
// edges are implicit: each vertex leads to the one after it.
type Shape []string

// String renders the shape on one line, for example
// "root -> schedule -> when_all(3) -> then".
func (s Shape) String() string {
    return strings.Join(s, " -> ")
}

// Describe reports the static shape of a graph without executing
// anything, walking the same root-to-leaf chain that execution follows.
// Useful for asserting on a composed graph's topology in tests.
func Describe[In, Out any](g Graph[In, Out]) Shape {
    var s Shape
    g.leaf.Describe(func(label string) {
        s = append(s, label)
    })
    return s
}
