package task_test

import (
    "math/rand"
    "sync/atomic"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/SuperV1234/orizzonte/internal/test"
    "github.com/SuperV1234/orizzonte/scheduler"
    "github.com/SuperV1234/orizzonte/task"
    "github.com/SuperV1234/orizzonte/tuple"
    "github.com/SuperV1234/orizzonte/unit"
)

func rndsleep() {
    time.Sleep(time.Duration(rand.Intn(100)) * time.Microsecond)
}

// Sub-stage results land positionally regardless of finish order.
func TestJoinIsPositional(t *testing.T) {
    test.Completes(t, 30 * time.Second, func() {
        s := scheduler.Goroutine()
        for i := 0; i < 200; i++ {
            g := task.Initiate3(
                func() int { rndsleep(); return 1 },
                func() int { rndsleep(); return 2 },
                func() int { rndsleep(); return 3 },
            )
            assert.Equal(t, tuple.ToT3(1, 2, 3), g.Get(s))
        }
    })
}

func TestAllUnitJoinKeepsFullWidthTuple(t *testing.T) {
    eachScheduler(t, func(t *testing.T, s scheduler.Scheduler) {
        test.Completes(t, 5 * time.Second, func() {
            var ran atomic.Int64
            g := task.Then(
                task.Initiate2(
                    task.Void(func() { ran.Add(1) }),
                    task.Void(func() { ran.Add(1) }),
                ),
                func(q tuple.T2[unit.Unit, unit.Unit]) unit.Unit {
                    ran.Add(1)
                    return unit.Unit{}
                },
            )
            g.GetVoid(s)
            assert.Equal(t, int64(3), ran.Load())
        })
    })
}

func TestNestedJoins(t *testing.T) {
    eachScheduler(t, func(t *testing.T, s scheduler.Scheduler) {
        test.Completes(t, 5 * time.Second, func() {
            g := task.Then(
                task.Then2(
                    task.Initiate2(
                        func() int { return 1 },
                        func() int { return 2 },
                    ),
                    func(q tuple.T2[int, int]) int { return q.A + q.B },
                    func(q tuple.T2[int, int]) int { return q.A * q.B },
                ),
                func(q tuple.T2[int, int]) int { return q.A + q.B },
            )
            assert.Equal(t, 5, g.Get(s))
        })
    })
}

func TestWideFanOut(t *testing.T) {
    eachScheduler(t, func(t *testing.T, s scheduler.Scheduler) {
        test.Completes(t, 5 * time.Second, func() {
            g := task.Then(
                task.Then8(
                    task.Initiate(func() int { return 1 }),
                    func(x int) int { return x + 1 },
                    func(x int) int { return x + 2 },
                    func(x int) int { return x + 3 },
                    func(x int) int { return x + 4 },
                    func(x int) int { return x + 5 },
                    func(x int) int { return x + 6 },
                    func(x int) int { return x + 7 },
                    func(x int) int { return x + 8 },
                ),
                func(q tuple.T8[int, int, int, int, int, int, int, int]) int {
                    return q.A + q.B + q.C + q.D + q.E + q.F + q.G + q.H
                },
            )
            assert.Equal(t, 44, g.Get(s))
        })
    })
}

func TestWhenAllSliceWiderThanTuples(t *testing.T) {
    eachScheduler(t, func(t *testing.T, s scheduler.Scheduler) {
        test.Completes(t, 5 * time.Second, func() {
            fs := make([]func(int) int, 32)
            for i := range fs {
                i := i
                fs[i] = func(x int) int { rndsleep(); return x + i }
            }
            g := task.WhenAllSlice(
                task.Initiate(func() int { return 100 }),
                fs,
            )
            got := g.Get(s)
            assert.Equal(t, 32, len(got))
            for i, v := range got {
                assert.Equal(t, 100 + i, v)
            }
        })
    })
}

// The downstream stage of a join runs exactly once, whichever of the
// sub-stages happens to finish last.
func TestJoinContinuationRunsOnce(t *testing.T) {
    test.Completes(t, 30 * time.Second, func() {
        s := scheduler.Goroutine()
        for i := 0; i < 200; i++ {
            var continued atomic.Int64
            g := task.Then(
                task.Initiate4(
                    func() int { rndsleep(); return 1 },
                    func() int { rndsleep(); return 2 },
                    func() int { rndsleep(); return 3 },
                    func() int { rndsleep(); return 4 },
                ),
                func(q tuple.T4[int, int, int, int]) int {
                    continued.Add(1)
                    return q.A + q.B + q.C + q.D
                },
            )
            assert.Equal(t, 10, g.Get(s))
            assert.Equal(t, int64(1), continued.Load())
        }
    })
}

// The shared input of a join is read intact by every sub-stage while
// alive, and each execution observes exactly one live probe value.
func TestJoinInputSharedByAllSubStages(t *testing.T) {
    test.Completes(t, 30 * time.Second, func() {
        var live atomic.Int64
        s := scheduler.Goroutine()
        for i := 0; i < 200; i++ {
            g := task.Then(
                task.Then2(
                    task.Initiate(func() *atomic.Int64 {
                        live.Add(1)
                        return &live
                    }),
                    func(p *atomic.Int64) int64 { rndsleep(); return p.Load() },
                    func(p *atomic.Int64) int64 { rndsleep(); return p.Load() },
                ),
                func(q tuple.T2[int64, int64]) unit.Unit {
                    live.Add(-1)
                    return unit.Unit{}
                },
            )
            g.GetVoid(s)
            assert.Equal(t, int64(0), live.Load())
        }
    })
}

// Randomized stress scenario: a three-way fan-out feeding two
// successive two-way fan-outs, with assertions at every stage, under
// scheduling jitter.
func TestFuzzyPipeline(t *testing.T) {
    if testing.Short() {
        t.Skip("skipping stress test in short mode")
    }

    test.Completes(t, 120 * time.Second, func() {
        s := scheduler.Goroutine()
        for i := 0; i < 1000; i++ {
            g := task.Then(
                task.Then2(
                    task.Then2(
                        task.Initiate3(
                            func() int { rndsleep(); return 1 },
                            func() int { rndsleep(); return 2 },
                            func() int { rndsleep(); return 3 },
                        ),
                        func(q tuple.T3[int, int, int]) int {
                            rndsleep()
                            assert.Equal(t, 6, q.A + q.B + q.C)
                            return 0
                        },
                        func(q tuple.T3[int, int, int]) int {
                            rndsleep()
                            assert.Equal(t, 6, q.A + q.B + q.C)
                            return 1
                        },
                    ),
                    func(q tuple.T2[int, int]) string {
                        assert.Equal(t, 1, q.A + q.B)
                        return "hello"
                    },
                    func(q tuple.T2[int, int]) string {
                        assert.Equal(t, 1, q.A + q.B)
                        return "world"
                    },
                ),
                func(q tuple.T2[string, string]) unit.Unit {
                    assert.Equal(t, "helloworld", q.A + q.B)
                    return unit.Unit{}
                },
            )
            g.GetVoid(s)
        }
    })
}
