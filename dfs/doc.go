// Package dfs answers reachability questions on a graph.Graph with an
// iterative depth-first search.
//
// The search pushes the source, then repeatedly pops a vertex and marks and
// pushes each of its unvisited neighbors. A vertex is marked when it is
// pushed, so it enters the stack at most once.
//
// Depth values are the length of the discovery chain, not shortest
// distances. Use package bfs when distances matter.
package dfs
