package bfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/frontier/bfs"
	"github.com/katalvlaran/frontier/core"
	"github.com/katalvlaran/frontier/pool"
)

// BenchmarkBFS_Chain measures BFS on a linear chain: one node per level,
// so every region runs inline.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	g, _ := core.NewGraph(N)
	for v := 1; v < N; v++ {
		_ = g.AddEdge(v, v+1)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.ResetVisited()
		_, _ = bfs.BFS(g, 1)
	}
}

// BenchmarkBFS_BinaryTree runs BFS on a complete binary tree, whose wide
// lower levels exercise the parallel region.
func BenchmarkBFS_BinaryTree(b *testing.B) {
	const depth = 16
	n := (1 << depth) - 1
	g, _ := core.NewGraph(n)
	for p := 1; p <= (n-1)/2; p++ {
		_ = g.AddEdge(p, 2*p)
		_ = g.AddEdge(p, 2*p+1)
	}

	for _, workers := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			p := pool.New(pool.WithWorkers(workers))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				g.ResetVisited()
				_, _ = bfs.BFS(g, 1, bfs.WithPool(p))
			}
		})
	}
}
