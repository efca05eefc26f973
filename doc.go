// Package frontier is a concurrent frontier traversal engine for
// undirected graphs: level-synchronous parallel BFS and batch parallel DFS
// over a shared adjacency list, with an atomic claim per node so every
// node is emitted at most once per traversal.
//
// What lives where:
//
//	core/    — Graph store (adjacency list over IDs 1..N), edge-count
//	           validation, VisitedSet with TryClaim
//	pool/    — fork-join task pool on errgroup, sequential mode
//	bfs/     — level-synchronous parallel BFS
//	dfs/     — batch DFS: pop, claim all neighbors in parallel, push batch
//	sweep/   — strategy selection and the disconnected-component sweep
//	config/  — YAML/TOML settings
//	cmd/frontier — interactive CLI with a Prometheus endpoint
//
// Quick start:
//
//	g, _ := core.NewGraphFromEdges(5, [][2]int{{1, 2}, {2, 3}, {4, 5}})
//	res, _ := sweep.Run(g, 1, sweep.BFS)
//	fmt.Println(res.Order()) // 1 2 3, then 4 5 from the restart
//
// Sequential pools (pool.Sequential) make every traversal deterministic;
// with more workers, the set of nodes per BFS level is fixed but the order
// inside a level may vary.
package frontier
