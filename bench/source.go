package bench

import (
	"fmt"

	"github.com/katalvlaran/graphbench/graph"
)

// Source yields the candidate graph files of a measurement run, in order.
// Candidates need not exist; Measure skips missing ones.
type Source interface {
	Paths() []string
	String() string
}

// IndexSource enumerates graph.FileName(Dir, i, Mode) for i in [From, To].
type IndexSource struct {
	Dir      string
	From, To int
	Mode     graph.Mode
}

// Paths returns the candidate paths in ascending index order.
func (s IndexSource) Paths() []string {
	if s.To < s.From {
		return nil
	}
	out := make([]string, 0, s.To-s.From+1)
	for i := s.From; i <= s.To; i++ {
		out = append(out, graph.FileName(s.Dir, i, s.Mode))
	}
	return out
}

func (s IndexSource) String() string {
	return fmt.Sprintf("%s[%d..%d]/%s", s.Dir, s.From, s.To, s.Mode)
}

// FileSource is an explicit list of graph files.
type FileSource []string

// Paths returns the files as given.
func (s FileSource) Paths() []string { return s }

func (s FileSource) String() string {
	return fmt.Sprintf("%d files", len(s))
}
