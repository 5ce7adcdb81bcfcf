// Package builder generates random simple undirected graphs with an exact
// vertex count N and a target edge count M, in the functional-options style
// shared by the rest of graphbench.
//
// The package offers the following key components:
//
//   - Constructors (Constructor closures):
//     – Connected(n, m): lays the path 1-2-...-N first, then adds random edges.
//     – Random(n, m):    adds random edges from empty; no connectivity promise.
//   - Orchestration:
//     – BuildGraph:      resolves builderConfig and runs one Constructor.
//     – Generate:        BuildGraph + graph.WriteFile at graph.FileName(dir, n, mode).
//   - Configuration primitives (BuilderOption):
//     – WithSeed / WithRand:  RNG policy (time-seeded when neither is given).
//     – WithMaxAttempts:      cap on rejection-sampling draws.
//     – WithDenseSampling:    density above which complement sampling is used.
//     – WithLogger:           logrus logger for warnings and progress.
//
// Sampling:
//
//	Random edges are drawn as two independent uniform vertices in [1,N].
//	A draw is rejected when both endpoints coincide or the normalized pair
//	already exists. Rejection sampling degrades as M approaches N(N-1)/2,
//	so when the requested density exceeds the dense threshold the builder
//	enumerates the missing pairs instead and takes a partial Fisher–Yates
//	sample of them.
//
// Guarantees:
//
//   - No self-loops, no duplicate edges, exactly N vertices.
//   - Connected(n, m) output is connected and contains exactly m edges.
//   - Random(n, m) stops and reports Truncated instead of looping forever when
//     the graph becomes complete or the attempt cap is hit before m edges.
//   - Fixed seed and options ⇒ identical graphs.
//   - Validation failures return sentinel errors and never touch the file system.
//
// See individual function documentation for contracts and complexity.
package builder
