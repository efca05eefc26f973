// Package sweep covers a whole graph, component by component, with one of
// the two traversal engines.
//
// Run(g, start, strategy) resets the visited set, traverses from start, and
// then (PolicyAll) restarts from each remaining unvisited node that has at
// least one neighbor, scanning IDs in increasing order. Visited state is
// kept across the restarts, so the concatenated order emits every node of
// every non-trivial component exactly once, plus start itself.
//
// Components(g, strategy) lists those components directly.
//
// Strategies are parsed from "bfs"/"dfs" or the menu numbers "1"/"2";
// policies from "all"/"none".
package sweep
