package core_test

import (
	"testing"

	"github.com/katalvlaran/frontier/core"
)

// BenchmarkAddEdge_Chain measures edge insertion on a chain of N nodes.
func BenchmarkAddEdge_Chain(b *testing.B) {
	const N = 10000
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		g, _ := core.NewGraph(N)
		for v := 1; v < N; v++ {
			_ = g.AddEdge(v, v+1)
		}
	}
}

// BenchmarkTryClaim_Parallel measures contended claims over a fixed set.
func BenchmarkTryClaim_Parallel(b *testing.B) {
	const N = 1 << 16
	s := core.NewVisitedSet(N)
	b.RunParallel(func(pb *testing.PB) {
		id := 1
		for pb.Next() {
			s.TryClaim(id)
			id = id%N + 1
		}
	})
}
