package bfs_test

import (
	"testing"

	"github.com/katalvlaran/graphbench/bfs"
	"github.com/katalvlaran/graphbench/builder"
)

// BenchmarkCountPaths_Chain measures BFS on a linear chain graph of size N.
func BenchmarkCountPaths_Chain(b *testing.B) {
	const N = 10000
	g := chain(b, N)

	b.ReportAllocs()
	b.SetBytes(int64(g.Order() + g.Size()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.CountPaths(g, 1)
	}
}

// BenchmarkShortestPath_Random runs BFS on the default measurement workload:
// a random graph with M = 2N.
func BenchmarkShortestPath_Random(b *testing.B) {
	const N = 50000
	rep, err := builder.BuildGraph(builder.Random(N, 2*N), builder.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	g := rep.Graph

	b.ReportAllocs()
	b.SetBytes(int64(g.Order() + g.Size()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.ShortestPath(g, 1, N)
	}
}
