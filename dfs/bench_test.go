package dfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/frontier/core"
	"github.com/katalvlaran/frontier/dfs"
	"github.com/katalvlaran/frontier/pool"
)

// BenchmarkDFS_Star stresses one wide claim region per run.
func BenchmarkDFS_Star(b *testing.B) {
	const N = 1 << 14
	g, _ := core.NewGraph(N)
	for v := 2; v <= N; v++ {
		_ = g.AddEdge(1, v)
	}
	for _, workers := range []int{1, 4, 8} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			p := pool.New(pool.WithWorkers(workers))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				g.ResetVisited()
				_, _ = dfs.DFS(g, 1, dfs.WithPool(p))
			}
		})
	}
}

// BenchmarkDFS_Chain measures narrow regions that always run inline.
func BenchmarkDFS_Chain(b *testing.B) {
	const N = 10000
	g, _ := core.NewGraph(N)
	for v := 1; v < N; v++ {
		_ = g.AddEdge(v, v+1)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.ResetVisited()
		_, _ = dfs.DFS(g, 1)
	}
}
