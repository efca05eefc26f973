package bfs_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/frontier/core"
)

// randomGraph builds a reproducible multigraph with n nodes and m edges,
// loops and parallel edges included.
func randomGraph(t testing.TB, seed int64, n, m int) *core.Graph {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	g, err := core.NewGraph(n)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < m; i++ {
		if err = g.AddEdge(rng.Intn(n)+1, rng.Intn(n)+1); err != nil {
			t.Fatal(err)
		}
	}
	return g
}

// distances is a plain sequential BFS used as the oracle: shortest hop
// count from start for every reachable node.
func distances(t testing.TB, g *core.Graph, start int) map[int]int {
	t.Helper()
	dist := map[int]int{start: 0}
	queue := []int{start}
	for qi := 0; qi < len(queue); qi++ {
		v := queue[qi]
		nb, err := g.Neighbors(v)
		if err != nil {
			t.Fatal(err)
		}
		for _, u := range nb {
			if _, seen := dist[u]; !seen {
				dist[u] = dist[v] + 1
				queue = append(queue, u)
			}
		}
	}
	return dist
}

func mustGraph(t testing.TB, n int, edges [][2]int) *core.Graph {
	t.Helper()
	g, err := core.NewGraphFromEdges(n, edges)
	if err != nil {
		t.Fatal(err)
	}
	return g
}
