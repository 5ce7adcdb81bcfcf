package bench

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/graphbench/bfs"
	"github.com/katalvlaran/graphbench/dfs"
	"github.com/katalvlaran/graphbench/graph"
)

// ErrUnknownAlgorithm is returned by ParseAlgorithm for an unsupported name.
var ErrUnknownAlgorithm = errors.New("bench: unknown algorithm")

// Algorithm selects the traversal timed by Measure.
type Algorithm int

const (
	// BFS counts shortest paths from vertex 1 to vertex N.
	BFS Algorithm = iota
	// DFS checks reachability of vertex N from vertex 1.
	DFS
	// Both times BFS and DFS on every file, loading it once per algorithm.
	Both
)

func (a Algorithm) String() string {
	switch a {
	case BFS:
		return "bfs"
	case DFS:
		return "dfs"
	case Both:
		return "both"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps "bfs", "dfs" or "both" (any case) to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bfs":
		return BFS, nil
	case "dfs":
		return DFS, nil
	case "both":
		return Both, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(text []byte) error {
	v, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

func (a Algorithm) expand() []Algorithm {
	if a == Both {
		return []Algorithm{BFS, DFS}
	}
	return []Algorithm{a}
}

// Row is a single timed (file, algorithm) pair.
type Row struct {
	Path      string
	Vertices  int
	Edges     int
	Algorithm Algorithm
	// Elapsed covers loading the file and running the traversal.
	Elapsed   time.Duration
	Reachable bool
	// Paths is the shortest-path count mod bfs.Modulus; always 0 for DFS.
	Paths int64
}

// Millis returns Elapsed in fractional milliseconds.
func (r Row) Millis() float64 {
	return float64(r.Elapsed) / float64(time.Millisecond)
}

// Measure loads every existing file of src and times the selected traversal
// from vertex 1 to vertex N. Missing files are skipped; malformed files abort
// the run with the rows collected so far.
func Measure(ctx context.Context, src Source, algo Algorithm, opts ...Option) ([]Row, error) {
	if algo < BFS || algo > Both {
		return nil, fmt.Errorf("Measure: %s: %w", algo, ErrUnknownAlgorithm)
	}
	o := newOptions(opts...)
	o.logger.WithFields(logrus.Fields{"source": src.String(), "algo": algo.String()}).Debug("measurement started")

	var rows []Row
	for _, path := range src.Paths() {
		for _, a := range algo.expand() {
			if err := ctx.Err(); err != nil {
				return rows, err
			}
			row, err := measureOne(ctx, path, a, o)
			if errors.Is(err, fs.ErrNotExist) {
				o.logger.WithField("path", path).Debug("file not found; skipping")
				break
			}
			if err != nil {
				return rows, fmt.Errorf("Measure: %w", err)
			}
			o.logger.WithFields(logrus.Fields{
				"vertices":   row.Vertices,
				"edges":      row.Edges,
				"algo":       row.Algorithm.String(),
				"elapsed_ms": row.Millis(),
				"reachable":  row.Reachable,
			}).Info("measured")
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func measureOne(ctx context.Context, path string, algo Algorithm, o options) (Row, error) {
	start := o.now()
	g, err := graph.ReadFile(path)
	if err != nil {
		return Row{}, err
	}

	row := Row{Path: path, Vertices: g.Order(), Edges: g.Size(), Algorithm: algo}
	switch algo {
	case BFS:
		p, err := bfs.ShortestPath(g, 1, g.Order(), bfs.WithContext(ctx))
		if err != nil {
			return Row{}, fmt.Errorf("%s: %w", path, err)
		}
		row.Reachable, row.Paths = p.Reachable, p.Count
	case DFS:
		ok, err := dfs.Reachable(g, 1, g.Order(), dfs.WithContext(ctx))
		if err != nil {
			return Row{}, fmt.Errorf("%s: %w", path, err)
		}
		row.Reachable = ok
	}
	row.Elapsed = o.now().Sub(start)
	return row, nil
}
