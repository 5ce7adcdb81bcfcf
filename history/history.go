// Package history persists measurement runs in a bolthold store on top of
// bbolt, so timings can be compared across invocations.
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/timshannon/bolthold"
	"go.etcd.io/bbolt"

	"github.com/katalvlaran/graphbench/bench"
)

// ErrNotFound is returned by Get for an unknown run ID.
var ErrNotFound = errors.New("history: run not found")

// Run is one stored invocation of the measurement driver.
type Run struct {
	ID uint64 `json:"id" boltholdKey:"ID"`
	// StartedAt is in Unix nanoseconds.
	StartedAt int64       `json:"startedAt" boltholdIndex:"StartedAt"`
	Algorithm string      `json:"algorithm" boltholdIndex:"Algorithm"`
	Source    string      `json:"source"`
	Rows      []bench.Row `json:"rows"`
}

// NewRun fills a Run from a finished measurement.
func NewRun(started time.Time, algo bench.Algorithm, src bench.Source, rows []bench.Row) *Run {
	return &Run{
		StartedAt: started.UnixNano(),
		Algorithm: algo.String(),
		Source:    src.String(),
		Rows:      rows,
	}
}

// Started returns StartedAt as a time.Time.
func (r *Run) Started() time.Time {
	return time.Unix(0, r.StartedAt)
}

// Total sums the elapsed time of all rows.
func (r *Run) Total() time.Duration {
	var d time.Duration
	for _, row := range r.Rows {
		d += row.Elapsed
	}
	return d
}

// Store is an open history database. It is not safe for concurrent writers
// from several processes beyond what the bbolt file lock allows.
type Store struct {
	db *bolthold.Store
}

// Open opens or creates the database at path, creating its directory.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("Open: %w", err)
	}
	db, err := bolthold.Open(path, 0o644, &bolthold.Options{
		Encoder: json.Marshal,
		Decoder: json.Unmarshal,
		Options: &bbolt.Options{
			Timeout:      5 * time.Second,
			NoGrowSync:   bbolt.DefaultOptions.NoGrowSync,
			FreelistType: bbolt.DefaultOptions.FreelistType,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("Open: %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close releases the database file.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save inserts run under a fresh sequence key and sets run.ID.
func (s *Store) Save(run *Run) error {
	if err := s.db.Insert(bolthold.NextSequence(), run); err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	return nil
}

// Get loads the run with the given ID.
func (s *Store) Get(id uint64) (*Run, error) {
	run := &Run{}
	if err := s.db.Get(id, run); err != nil {
		if errors.Is(err, bolthold.ErrNotFound) {
			return nil, fmt.Errorf("Get(%d): %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("Get(%d): %w", id, err)
	}
	return run, nil
}

// List returns runs newest first. An empty algo matches every algorithm;
// limit <= 0 means no limit.
func (s *Store) List(algo string, limit int) ([]*Run, error) {
	q := &bolthold.Query{}
	if algo != "" {
		q = bolthold.Where("Algorithm").Eq(algo)
	}
	q = q.SortBy("StartedAt").Reverse()
	if limit > 0 {
		q = q.Limit(limit)
	}

	var runs []*Run
	if err := s.db.Find(&runs, q); err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	return runs, nil
}

// Prune deletes every run started before the cutoff and reports how many
// were removed.
func (s *Store) Prune(before time.Time) (int, error) {
	var runs []*Run
	if err := s.db.Find(&runs, bolthold.Where("StartedAt").Lt(before.UnixNano())); err != nil {
		return 0, fmt.Errorf("Prune: %w", err)
	}
	for i, run := range runs {
		if err := s.db.Delete(run.ID, run); err != nil {
			return i, fmt.Errorf("Prune: delete %d: %w", run.ID, err)
		}
	}
	return len(runs), nil
}
