package engine

import (
    "github.com/SuperV1234/orizzonte/scheduler"
    "github.com/SuperV1234/orizzonte/unit"
)

// schedule is a concurrency boundary: it does no computation of its own,
// it only hands the downstream continuation to the scheduler.
type schedule[In any] struct {
    up Node[In]
}

// Schedule appends a scheduler boundary below up. The incoming value is
// dropped and a unit value is reinjected on the far side of the
// boundary, so the submitted closure captures no stage data.
func Schedule[In any](up Node[In]) Node[unit.Unit] {
    return &schedule[In]{up: up}
}

func (n *schedule[In]) WalkUp(s scheduler.Scheduler, next func(unit.Unit)) {
    n.up.WalkUp(s, func(in In) {
        n.execute(s, in, next)
    })
}

func (n *schedule[In]) execute(s scheduler.Scheduler, _ In, next func(unit.Unit)) {
    s(func() { next(unit.Unit{}) })
}

func (n *schedule[In]) Describe(visit func(string)) {
    n.up.Describe(visit)
    visit("schedule")
}
