// Package graphbench generates random undirected graphs, stores them in a
// flat text format, and times two traversals over them: BFS shortest-path
// counting modulo 1_000_000_007 and stack-based DFS reachability.
//
// Subpackages:
//
//	graph/    - index-based simple undirected Graph and the "N M" text format
//	builder/  - connected and general random generators (rejection or complement sampling)
//	bfs/      - shortest-path counting from a source
//	dfs/      - explicit-stack reachability and components
//	bench/    - generation plans, measurement runs and result sinks
//	history/  - bolthold store of past measurement runs
//	config/   - YAML configuration
//
// The graphbench command in cmd/graphbench wires them together:
//
//	graphbench generate --mode connected --start 5000 --step 5000 --count 100
//	graphbench measure --algo both --output result.csv --history runs.db
//	graphbench history list --history runs.db
//
// The generator and the traversals share nothing but the file format.
// Everything runs on one goroutine; context cancellation is observed
// between files and inside the traversals.
package graphbench
