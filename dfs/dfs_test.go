package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphbench/bfs"
	"github.com/katalvlaran/graphbench/dfs"
	"github.com/katalvlaran/graphbench/graph"
)

func build(t testing.TB, n int, edges ...[2]int) *graph.Graph {
	t.Helper()
	g, err := graph.New(n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	return g
}

func TestReach_Errors(t *testing.T) {
	_, err := dfs.Reach(nil, 1)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	g := build(t, 2, [2]int{1, 2})
	_, err = dfs.Reach(g, 3)
	assert.ErrorIs(t, err, dfs.ErrVertexNotFound)
	_, err = dfs.Reachable(g, 1, 0)
	assert.ErrorIs(t, err, dfs.ErrVertexNotFound)
}

// TestReachable_Disconnected: N=4, edges {1,2},{3,4}; 4 is unreachable from 1.
func TestReachable_Disconnected(t *testing.T) {
	g := build(t, 4, [2]int{1, 2}, [2]int{3, 4})

	ok, err := dfs.Reachable(g, 1, 4)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = dfs.Reachable(g, 1, 2)
	require.NoError(t, err)
	assert.True(t, ok)

	res, err := dfs.Reach(g, 1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{1, 2}, res.Order)
	assert.Equal(t, 1, res.Components())
	assert.Zero(t, res.Component[3])
	_, err = res.PathTo(4)
	assert.ErrorIs(t, err, dfs.ErrNoPath)
}

// TestReach_DepthIsNotShortest: the stack explores 1-3-4-5 before 2-5, so
// 5 is recorded at depth 3 although its shortest distance is 2.
func TestReach_DepthIsNotShortest(t *testing.T) {
	g := build(t, 5, [2]int{1, 2}, [2]int{1, 3}, [2]int{3, 4}, [2]int{4, 5}, [2]int{2, 5})

	res, err := dfs.Reach(g, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Depth[5])
	assert.Equal(t, 4, res.Parent[5])

	path, err := res.PathTo(5)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 4, 5}, path)

	short, err := bfs.ShortestPath(g, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, 2, short.Distance)
	assert.Less(t, short.Distance, res.Depth[5])
}

// TestReach_DeepChain ensures a long path does not depend on call-stack depth.
func TestReach_DeepChain(t *testing.T) {
	const n = 200000
	g, err := graph.NewWithCapacity(n, n-1)
	require.NoError(t, err)
	for v := 1; v < n; v++ {
		require.NoError(t, g.AddEdge(v, v+1))
	}
	ok, err := dfs.Reachable(g, 1, n)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestReach_FullTraversal(t *testing.T) {
	// components {1,2,3}, {4,5}, {6}
	g := build(t, 6, [2]int{1, 2}, [2]int{2, 3}, [2]int{4, 5})

	res, err := dfs.Reach(g, 1, dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, 3, res.Components())
	assert.Len(t, res.Order, 6)
	for v := 1; v <= 6; v++ {
		assert.True(t, res.Reached(v))
	}
	assert.Equal(t, []int{0, 1, 1, 1, 2, 2, 3}, res.Component)
	assert.Zero(t, res.Parent[4], "restart roots have no parent")
}

func TestReach_OnVisit(t *testing.T) {
	g := build(t, 3, [2]int{1, 2}, [2]int{2, 3})

	var seen []int
	_, err := dfs.Reach(g, 1, dfs.WithOnVisit(func(v int) error {
		seen = append(seen, v)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, seen)

	stop := errors.New("stop")
	res, err := dfs.Reach(g, 1, dfs.WithOnVisit(func(v int) error {
		if v == 2 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.False(t, res.Reached(3))
}

func TestReach_Cancellation(t *testing.T) {
	g := build(t, 3, [2]int{1, 2}, [2]int{2, 3})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.Reach(g, 1, dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
