package graph

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	fileExt          = ".txt"
	connectedSuffix  = "_connected"
	maxLineBytes     = 1 << 20
	defaultDirPerm   = 0o755
	defaultFilePerm  = 0o644
	writerBufferSize = 64 << 10
)

// FileName returns the deterministic path of the graph with n vertices
// generated in the given mode: "<dir>/<n>.txt" for General and
// "<dir>/<n>_connected.txt" for Connected.
func FileName(dir string, n int, mode Mode) string {
	name := strconv.Itoa(n)
	if mode == Connected {
		name += connectedSuffix
	}
	return filepath.Join(dir, name+fileExt)
}

// Write serializes g: a "N M" header followed by one edge per line.
func Write(w io.Writer, g *Graph) error {
	bw := bufio.NewWriterSize(w, writerBufferSize)
	if _, err := fmt.Fprintf(bw, "%d %d\n", g.Order(), g.Size()); err != nil {
		return fmt.Errorf("Write: header: %w", err)
	}
	buf := make([]byte, 0, 24)
	for _, e := range g.edges {
		buf = strconv.AppendInt(buf[:0], int64(e.U), 10)
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, int64(e.V), 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("Write: edge %s: %w", e, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("Write: flush: %w", err)
	}
	return nil
}

// WriteFile writes g to path, creating parent directories as needed.
// The file is written to a temporary sibling and renamed into place, so a
// failed write never leaves a partial graph behind.
func WriteFile(path string, g *Graph) error {
	if err := os.MkdirAll(filepath.Dir(path), defaultDirPerm); err != nil {
		return fmt.Errorf("WriteFile: create directory: %w", err)
	}
	tmpPath := path + ".tmp"
	f, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, defaultFilePerm)
	if err != nil {
		return fmt.Errorf("WriteFile: create temp file: %w", err)
	}
	defer func() {
		f.Close()
		os.Remove(tmpPath) // no-op after a successful rename
	}()

	if err := Write(f, g); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("WriteFile: close: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("WriteFile: rename: %w", err)
	}
	return nil
}

// Read parses a graph in the text format. Exactly M edge pairs are consumed
// after the header; anything that follows them is ignored.
func Read(r io.Reader) (*Graph, error) {
	tr := newTokenReader(r)

	n, err := tr.int("vertex count")
	if err != nil {
		return nil, err
	}
	m, err := tr.int("edge count")
	if err != nil {
		return nil, err
	}
	if n < 1 || n > MaxVertices {
		return nil, fmt.Errorf("Read: line %d: N=%d not in [1,%d]: %w", tr.line, n, MaxVertices, ErrMalformed)
	}
	if m < 0 {
		return nil, fmt.Errorf("Read: line %d: M=%d: %w", tr.line, m, ErrMalformed)
	}

	// Cap the reservation so a bogus header cannot force a huge allocation.
	capHint := m
	if int64(capHint) > MaxEdges(n) {
		capHint = int(MaxEdges(n))
	}
	g, err := NewWithCapacity(n, capHint)
	if err != nil {
		return nil, err
	}

	var a, b int
	for i := 1; i <= m; i++ {
		if a, err = tr.int("edge endpoint"); err != nil {
			return nil, err
		}
		if b, err = tr.int("edge endpoint"); err != nil {
			return nil, err
		}
		if err = g.AddEdge(a, b); err != nil {
			return nil, fmt.Errorf("Read: line %d: %w", tr.line, err)
		}
	}
	return g, nil
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// tokenReader yields whitespace-separated tokens while tracking the
// 1-based line they came from.
type tokenReader struct {
	sc     *bufio.Scanner
	line   int
	fields []string
}

func newTokenReader(r io.Reader) *tokenReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return &tokenReader{sc: sc}
}

func (t *tokenReader) next(what string) (string, error) {
	for len(t.fields) == 0 {
		if !t.sc.Scan() {
			if err := t.sc.Err(); err != nil {
				return "", fmt.Errorf("Read: line %d: %w", t.line+1, err)
			}
			return "", fmt.Errorf("Read: %s missing after line %d: %w", what, t.line, ErrTruncated)
		}
		t.line++
		t.fields = strings.Fields(t.sc.Text())
	}
	tok := t.fields[0]
	t.fields = t.fields[1:]
	return tok, nil
}

func (t *tokenReader) int(what string) (int, error) {
	tok, err := t.next(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("Read: line %d: %s %q: %w", t.line, what, tok, ErrMalformed)
	}
	return v, nil
}
