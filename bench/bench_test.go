package bench_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphbench/bench"
	"github.com/katalvlaran/graphbench/graph"
)

// stepClock advances by step on every call.
func stepClock(step time.Duration) func() time.Time {
	t := time.Unix(0, 0)
	return func() time.Time {
		t = t.Add(step)
		return t
	}
}

func TestPlan_Sizes(t *testing.T) {
	p := bench.Plan{Start: 5000, Step: 5000, Count: 3, EdgeFactor: 2}
	assert.Equal(t, [][2]int{{5000, 10000}, {10000, 20000}, {15000, 30000}}, p.Sizes())

	p.Edges = 7
	assert.Equal(t, [][2]int{{5000, 7}, {10000, 7}, {15000, 7}}, p.Sizes())
}

func TestRunPlan_InvalidPlan(t *testing.T) {
	ctx := context.Background()
	for name, p := range map[string]bench.Plan{
		"zero count":    {Start: 1, Count: 0},
		"zero start":    {Start: 0, Count: 1},
		"negative step": {Start: 1, Step: -1, Count: 1},
		"negative edge": {Start: 1, Count: 1, EdgeFactor: -1},
		"attempts":      {Start: 1, Count: 1, MaxAttempts: -1},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := bench.RunPlan(ctx, p, t.TempDir())
			assert.ErrorIs(t, err, bench.ErrInvalidPlan)
		})
	}
}

func TestRunPlan_Connected(t *testing.T) {
	dir := t.TempDir()
	p := bench.Plan{Mode: graph.Connected, Start: 5, Step: 5, Count: 3, EdgeFactor: 2, Seed: 7}

	gen, err := bench.RunPlan(context.Background(), p, dir)
	require.NoError(t, err)
	require.Len(t, gen, 3)

	for i, n := range []int{5, 10, 15} {
		assert.Equal(t, graph.FileName(dir, n, graph.Connected), gen[i].Path)
		g, err := graph.ReadFile(gen[i].Path)
		require.NoError(t, err)
		assert.Equal(t, n, g.Order())
		assert.Equal(t, 2*n, g.Size())
	}
}

func TestRunPlan_SeedReproducible(t *testing.T) {
	p := bench.Plan{Mode: graph.General, Start: 20, Step: 10, Count: 2, EdgeFactor: 1.5, Seed: 42}
	a, b := t.TempDir(), t.TempDir()

	_, err := bench.RunPlan(context.Background(), p, a)
	require.NoError(t, err)
	_, err = bench.RunPlan(context.Background(), p, b)
	require.NoError(t, err)

	for _, n := range []int{20, 30} {
		x, err := os.ReadFile(graph.FileName(a, n, graph.General))
		require.NoError(t, err)
		y, err := os.ReadFile(graph.FileName(b, n, graph.General))
		require.NoError(t, err)
		assert.Equal(t, x, y)
	}
}

func TestRunPlan_SkipsRejectedEntries(t *testing.T) {
	dir := t.TempDir()
	logger, hook := logtest.NewNullLogger()
	// N=1 with edges and N=2 with two edges are both invalid.
	p := bench.Plan{Mode: graph.General, Start: 1, Step: 1, Count: 3, Edges: 2}

	gen, err := bench.RunPlan(context.Background(), p, dir, bench.WithLogger(logger))
	require.NoError(t, err)
	require.Len(t, gen, 1)
	assert.Equal(t, 3, gen[0].Report.Graph.Order())

	assert.NoFileExists(t, graph.FileName(dir, 1, graph.General))
	assert.NoFileExists(t, graph.FileName(dir, 2, graph.General))

	var rejected int
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.ErrorLevel {
			rejected++
		}
	}
	assert.Equal(t, 2, rejected)
}

func TestRunPlan_WriteFailureAborts(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	p := bench.Plan{Mode: graph.General, Start: 3, Count: 1, Edges: 2}
	_, err := bench.RunPlan(context.Background(), p, blocker)
	require.Error(t, err)
}

func TestRunPlan_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := bench.Plan{Mode: graph.General, Start: 3, Count: 2, Edges: 2}
	gen, err := bench.RunPlan(ctx, p, t.TempDir())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, gen)
}

func TestParseAlgorithm(t *testing.T) {
	for in, want := range map[string]bench.Algorithm{"bfs": bench.BFS, "DFS": bench.DFS, " both ": bench.Both} {
		got, err := bench.ParseAlgorithm(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := bench.ParseAlgorithm("dijkstra")
	assert.ErrorIs(t, err, bench.ErrUnknownAlgorithm)

	var a bench.Algorithm
	require.NoError(t, a.UnmarshalText([]byte("dfs")))
	assert.Equal(t, bench.DFS, a)
}

func TestIndexSource_Paths(t *testing.T) {
	s := bench.IndexSource{Dir: "g", From: 3, To: 5, Mode: graph.Connected}
	assert.Equal(t, []string{
		filepath.Join("g", "3_connected.txt"),
		filepath.Join("g", "4_connected.txt"),
		filepath.Join("g", "5_connected.txt"),
	}, s.Paths())

	assert.Empty(t, bench.IndexSource{Dir: "g", From: 5, To: 3}.Paths())
}

func writeGraph(t *testing.T, dir string, n int, edges ...[2]int) string {
	t.Helper()
	g, err := graph.New(n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	path := graph.FileName(dir, n, graph.General)
	require.NoError(t, graph.WriteFile(path, g))
	return path
}

func TestMeasure_SkipsMissingFiles(t *testing.T) {
	dir := t.TempDir()
	writeGraph(t, dir, 3, [2]int{1, 2}, [2]int{2, 3})
	writeGraph(t, dir, 6, [2]int{1, 2}, [2]int{4, 5})

	src := bench.IndexSource{Dir: dir, From: 1, To: 10}
	rows, err := bench.Measure(context.Background(), src, bench.BFS, bench.WithClock(stepClock(time.Millisecond)))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 3, rows[0].Vertices)
	assert.True(t, rows[0].Reachable)
	assert.Equal(t, int64(1), rows[0].Paths)
	assert.Equal(t, time.Millisecond, rows[0].Elapsed)

	assert.Equal(t, 6, rows[1].Vertices)
	assert.False(t, rows[1].Reachable)
	assert.Equal(t, int64(0), rows[1].Paths)
}

func TestMeasure_Both(t *testing.T) {
	dir := t.TempDir()
	// two shortest routes 1-2-4 and 1-3-4
	writeGraph(t, dir, 4, [2]int{1, 2}, [2]int{1, 3}, [2]int{2, 4}, [2]int{3, 4})

	logger, hook := logtest.NewNullLogger()
	rows, err := bench.Measure(context.Background(), bench.FileSource{graph.FileName(dir, 4, graph.General)},
		bench.Both, bench.WithLogger(logger))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, bench.BFS, rows[0].Algorithm)
	assert.Equal(t, int64(2), rows[0].Paths)
	assert.Equal(t, bench.DFS, rows[1].Algorithm)
	assert.True(t, rows[1].Reachable)
	assert.Equal(t, int64(0), rows[1].Paths)

	var measured int
	for _, e := range hook.AllEntries() {
		if e.Message == "measured" {
			measured++
			assert.Contains(t, e.Data, "elapsed_ms")
		}
	}
	assert.Equal(t, 2, measured)
}

func TestMeasure_MalformedAborts(t *testing.T) {
	dir := t.TempDir()
	writeGraph(t, dir, 2, [2]int{1, 2})
	require.NoError(t, os.WriteFile(filepath.Join(dir, "3.txt"), []byte("3 5\n1 2\n"), 0o644))

	rows, err := bench.Measure(context.Background(), bench.IndexSource{Dir: dir, From: 1, To: 3}, bench.DFS)
	assert.ErrorIs(t, err, graph.ErrTruncated)
	assert.Len(t, rows, 1)
}

func TestMeasure_OversizedHeaderAborts(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "1.txt"), []byte("9223372036854775807 0\n"), 0o644))

	_, err := bench.Measure(context.Background(), bench.IndexSource{Dir: dir, From: 1, To: 1}, bench.BFS)
	assert.ErrorIs(t, err, graph.ErrMalformed)
}

func TestMeasure_Canceled(t *testing.T) {
	dir := t.TempDir()
	writeGraph(t, dir, 2, [2]int{1, 2})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bench.Measure(ctx, bench.IndexSource{Dir: dir, From: 2, To: 2}, bench.BFS)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMeasure_UnknownAlgorithm(t *testing.T) {
	_, err := bench.Measure(context.Background(), bench.FileSource{}, bench.Algorithm(9))
	assert.ErrorIs(t, err, bench.ErrUnknownAlgorithm)
}

func sampleRows() []bench.Row {
	return []bench.Row{
		{Vertices: 3, Edges: 2, Algorithm: bench.BFS, Elapsed: 1500 * time.Microsecond, Reachable: true, Paths: 1},
		{Vertices: 3, Edges: 2, Algorithm: bench.DFS, Elapsed: 250 * time.Microsecond},
	}
}

func TestCSVSink(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, bench.CSVSink{W: &buf}.Write(sampleRows()))
	assert.Equal(t,
		"vertices,edges,algorithm,elapsed_ms,reachable,paths\n"+
			"3,2,bfs,1.500,true,1\n"+
			"3,2,dfs,0.250,false,\n",
		buf.String())
}

func TestTableSink(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, bench.TableSink{W: &buf}.Write(sampleRows()))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "elapsed_ms")
	assert.Contains(t, lines[1], "1.500")
	assert.Contains(t, lines[2], "dfs")
}

func TestMultiSink(t *testing.T) {
	var a, b bytes.Buffer
	sink := bench.MultiSink{bench.CSVSink{W: &a}, bench.CSVSink{W: &b}}
	require.NoError(t, sink.Write(sampleRows()))
	assert.Equal(t, a.String(), b.String())
	assert.NotEmpty(t, a.String())
}
