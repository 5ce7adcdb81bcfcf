package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/graphbench/dfs"
	"github.com/katalvlaran/graphbench/graph"
)

// ExampleReachable checks reachability across two components.
func ExampleReachable() {
	g, _ := graph.New(4)
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(3, 4)

	to2, _ := dfs.Reachable(g, 1, 2)
	to4, _ := dfs.Reachable(g, 1, 4)
	fmt.Println(to2, to4)
	// Output:
	// true false
}

// ExampleReach_components counts connected components with a forest traversal.
func ExampleReach_components() {
	g, _ := graph.New(7)
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(3, 4)
	_ = g.AddEdge(4, 5)

	res, _ := dfs.Reach(g, 1, dfs.WithFullTraversal())
	fmt.Println(res.Components())
	// Output:
	// 4
}
