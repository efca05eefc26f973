package dfs_test

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/frontier/core"
	"github.com/katalvlaran/frontier/dfs"
	"github.com/katalvlaran/frontier/pool"
)

func mustGraph(t testing.TB, n int, edges [][2]int) *core.Graph {
	t.Helper()
	g, err := core.NewGraphFromEdges(n, edges)
	require.NoError(t, err)
	return g
}

func randomGraph(t testing.TB, seed int64, n, m int) *core.Graph {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	g, err := core.NewGraph(n)
	require.NoError(t, err)
	for i := 0; i < m; i++ {
		require.NoError(t, g.AddEdge(rng.Intn(n)+1, rng.Intn(n)+1))
	}
	return g
}

// component returns the node set reachable from start.
func component(t testing.TB, g *core.Graph, start int) map[int]bool {
	t.Helper()
	seen := map[int]bool{start: true}
	stack := []int{start}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nb, err := g.Neighbors(v)
		require.NoError(t, err)
		for _, u := range nb {
			if !seen[u] {
				seen[u] = true
				stack = append(stack, u)
			}
		}
	}
	return seen
}

// replayStack checks that order is exactly the pop sequence of a stack
// seeded with start and extended by each recorded batch.
func replayStack(t *testing.T, start int, order []int, batches map[int][]int) {
	t.Helper()
	stack := []int{start}
	for i, id := range order {
		require.NotEmpty(t, stack, "pop #%d (%d) from empty stack", i, id)
		top := stack[len(stack)-1]
		require.Equal(t, top, id, "pop #%d", i)
		stack = stack[:len(stack)-1]
		stack = append(stack, batches[id]...)
	}
	require.Empty(t, stack, "stack not drained")
}

func parallel(workers int) dfs.Option {
	return dfs.WithPool(pool.New(pool.WithWorkers(workers), pool.WithThreshold(0)))
}

// TestDFS_Errors verifies invalid input handling.
func TestDFS_Errors(t *testing.T) {
	_, err := dfs.DFS(nil, 1)
	require.ErrorIs(t, err, dfs.ErrGraphNil)

	g := mustGraph(t, 2, [][2]int{{1, 2}})
	_, err = dfs.DFS(g, 3)
	require.ErrorIs(t, err, core.ErrOutOfRangeNodeID)
	_, err = dfs.DFS(g, 0)
	require.ErrorIs(t, err, core.ErrOutOfRangeNodeID)

	g.TryClaim(2)
	_, err = dfs.DFS(g, 2)
	require.ErrorIs(t, err, dfs.ErrStartVisited)
}

// TestDFS_SingleNode covers N=1, M=0.
func TestDFS_SingleNode(t *testing.T) {
	res, err := dfs.DFS(mustGraph(t, 1, nil), 1)
	require.NoError(t, err)
	require.Equal(t, []int{1}, res.Order)
	require.Zero(t, res.Batches)
	require.Equal(t, 1, res.MaxStack)
}

// TestDFS_SequentialOrder pins the batch order: 1's neighbors {2,3} are
// pushed together, 3 is popped first, and 4 is found under 3.
func TestDFS_SequentialOrder(t *testing.T) {
	g := mustGraph(t, 4, [][2]int{{1, 2}, {1, 3}, {3, 4}})
	res, err := dfs.DFS(g, 1, dfs.WithPool(pool.Sequential()))
	require.NoError(t, err)
	require.Equal(t, []int{1, 3, 4, 2}, res.Order)
	require.Equal(t, map[int]int{1: 0, 2: 1, 3: 1, 4: 2}, res.Depth)
	require.Equal(t, 2, res.Batches)
	require.Equal(t, 2, res.MaxStack)
}

// TestDFS_BatchNotPreorder shows the difference from recursive DFS: in a
// triangle, recursive preorder from 1 is 1,2,3 with 3 under 2; batch DFS
// claims 2 and 3 together from 1.
func TestDFS_BatchNotPreorder(t *testing.T) {
	g := mustGraph(t, 3, [][2]int{{1, 2}, {1, 3}, {2, 3}})
	var batches [][]int
	res, err := dfs.DFS(g, 1,
		dfs.WithPool(pool.Sequential()),
		dfs.WithOnBatch(func(from int, batch []int) {
			batches = append(batches, append([]int{from}, batch...))
		}),
	)
	require.NoError(t, err)
	require.Equal(t, []int{1, 3, 2}, res.Order)
	require.Equal(t, [][]int{{1, 2, 3}}, batches)
	require.Equal(t, 1, res.Depth[2])
}

// TestDFS_StackDisciplineAndCompleteness runs random multigraphs under real
// parallelism and checks completeness, uniqueness and stack consistency.
func TestDFS_StackDisciplineAndCompleteness(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		for _, workers := range []int{1, 4, 8} {
			t.Run(fmt.Sprintf("seed=%d/workers=%d", seed, workers), func(t *testing.T) {
				g := randomGraph(t, seed, 250, 400)
				want := component(t, g, 1)

				batches := make(map[int][]int)
				res, err := dfs.DFS(g, 1, parallel(workers),
					dfs.WithOnBatch(func(from int, batch []int) {
						batches[from] = append([]int(nil), batch...)
					}),
				)
				require.NoError(t, err)
				require.Len(t, res.Order, len(want))

				seen := make(map[int]bool, len(res.Order))
				for _, id := range res.Order {
					require.False(t, seen[id], "node %d emitted twice", id)
					require.True(t, want[id], "node %d not reachable", id)
					seen[id] = true
				}
				replayStack(t, 1, res.Order, batches)
			})
		}
	}
}

// TestDFS_RetraversalSameSet checks idempotence on a reset visited set.
func TestDFS_RetraversalSameSet(t *testing.T) {
	g := randomGraph(t, 7, 150, 200)
	first, err := dfs.DFS(g, 3, parallel(8))
	require.NoError(t, err)
	g.ResetVisited()
	second, err := dfs.DFS(g, 3, parallel(8))
	require.NoError(t, err)
	assert.ElementsMatch(t, first.Order, second.Order)
}

// TestDFS_ParallelEdgesAndLoops never pushes a node twice.
func TestDFS_ParallelEdgesAndLoops(t *testing.T) {
	g, _ := core.NewGraph(3)
	for _, e := range [][2]int{{1, 2}, {1, 2}, {2, 2}, {2, 3}, {3, 2}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	res, err := dfs.DFS(g, 1, parallel(4))
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{1, 2, 3}, res.Order)
	assert.Positive(t, res.Conflicts)
}

// TestDFS_Disconnected leaves other components untouched.
func TestDFS_Disconnected(t *testing.T) {
	g := mustGraph(t, 5, [][2]int{{1, 2}, {2, 3}, {4, 5}})
	res, err := dfs.DFS(g, 2)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{1, 2, 3}, res.Order)
	assert.False(t, g.IsVisited(4))
}

// TestDFS_MaxDepthAndFilter covers the limiting options.
func TestDFS_MaxDepthAndFilter(t *testing.T) {
	chain := [][2]int{{1, 2}, {2, 3}, {3, 4}}

	res, err := dfs.DFS(mustGraph(t, 4, chain), 1, dfs.WithMaxDepth(0))
	require.NoError(t, err)
	require.Equal(t, []int{1}, res.Order)

	res, err = dfs.DFS(mustGraph(t, 4, chain), 1, dfs.WithMaxDepth(2))
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, res.Order)

	res, err = dfs.DFS(mustGraph(t, 4, chain), 1, dfs.WithFilterNeighbor(func(curr, nbr int) bool {
		return nbr != 3
	}))
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, res.Order)
}

// TestDFS_OnVisitAbort stops at the first hook error.
func TestDFS_OnVisitAbort(t *testing.T) {
	stop := errors.New("stop")
	g := mustGraph(t, 4, [][2]int{{1, 2}, {1, 3}, {3, 4}})
	var visited []int
	res, err := dfs.DFS(g, 1, dfs.WithPool(pool.Sequential()), dfs.WithOnVisit(func(id, _ int) error {
		visited = append(visited, id)
		if id == 4 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
	require.Equal(t, []int{1, 3, 4}, visited)
	require.Equal(t, visited, res.Order)
}

// TestDFS_ContextCancelled returns the context error without claiming start.
func TestDFS_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := mustGraph(t, 2, [][2]int{{1, 2}})
	res, err := dfs.DFS(g, 1, dfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, res)
	require.False(t, g.IsVisited(1))

	res, err = dfs.DFS(g, 1)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, res.Order)
}
