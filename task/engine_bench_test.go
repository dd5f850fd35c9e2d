package task_test

import (
    "testing"

    "github.com/SuperV1234/orizzonte/scheduler"
    "github.com/SuperV1234/orizzonte/task"
    "github.com/SuperV1234/orizzonte/tuple"
)

func BenchmarkChainInline(b *testing.B) {
    s := scheduler.Inline()
    for n := 0; n < b.N; n++ {
        g := task.Initiate(func() int { return 0 })
        for i := 0; i < 10; i++ {
            g = task.Then(g, func(x int) int { return x + 1 })
        }
        if g.Get(s) != 10 {
            b.Fatal("bad chain result")
        }
    }
}

func BenchmarkJoinInline(b *testing.B) {
    s := scheduler.Inline()
    for n := 0; n < b.N; n++ {
        g := task.Then(
            task.Initiate4(
                func() int { return 1 },
                func() int { return 2 },
                func() int { return 3 },
                func() int { return 4 },
            ),
            func(q tuple.T4[int, int, int, int]) int {
                return q.A + q.B + q.C + q.D
            },
        )
        if g.Get(s) != 10 {
            b.Fatal("bad join result")
        }
    }
}

func BenchmarkJoinGoroutine(b *testing.B) {
    s := scheduler.Goroutine()
    for n := 0; n < b.N; n++ {
        g := task.Then(
            task.Initiate4(
                func() int { return 1 },
                func() int { return 2 },
                func() int { return 3 },
                func() int { return 4 },
            ),
            func(q tuple.T4[int, int, int, int]) int {
                return q.A + q.B + q.C + q.D
            },
        )
        if g.Get(s) != 10 {
            b.Fatal("bad join result")
        }
    }
}
