// Package scheduler defines the contract between a composed task graph
// and whatever supplies its concurrency, plus a few reference
// implementations.
//
// The task engine (see the task package) never creates goroutines of its
// own. Every point where a graph crosses onto "some other goroutine" is
// expressed as a submission to a [Scheduler], so the caller controls the
// threading policy of an entire graph by passing a different scheduler
// value: inline for deterministic single-goroutine tests, one goroutine
// per work item for maximum parallelism, or a bounded pool.
package scheduler

// Scheduler accepts a nullary work item and promises to run it exactly
// once, eventually, on any goroutine of its choosing. There is no error
// channel and no return value; a scheduler that loses a work item leaves
// the submitting graph incomplete.
type Scheduler func(work func())

// Inline returns a scheduler that runs every work item immediately on
// the submitting goroutine, before returning from the submission.
//
// It supplies no concurrency at all, which makes it a useful degenerate
// test double: a graph that deadlocks under Inline is relying on
// parallelism it was never promised.
func Inline() Scheduler {
    return func(work func()) { work() }
}

// Goroutine returns a scheduler that runs every work item on a fresh
// goroutine, like "go work()". Unbounded: each submission costs one
// goroutine, and nothing waits for them.
func Goroutine() Scheduler {
    return func(work func()) { go work() }
}
