package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
)

// Header is the column set written by CSVSink and TableSink.
var Header = []string{"vertices", "edges", "algorithm", "elapsed_ms", "reachable", "paths"}

// Sink receives measurement rows.
type Sink interface {
	Write(rows []Row) error
}

func fields(r Row) []string {
	paths := ""
	if r.Algorithm == BFS {
		paths = strconv.FormatInt(r.Paths, 10)
	}
	return []string{
		strconv.Itoa(r.Vertices),
		strconv.Itoa(r.Edges),
		r.Algorithm.String(),
		strconv.FormatFloat(r.Millis(), 'f', 3, 64),
		strconv.FormatBool(r.Reachable),
		paths,
	}
}

// CSVSink writes a header line followed by one record per row.
type CSVSink struct {
	W io.Writer
}

// Write implements Sink.
func (s CSVSink) Write(rows []Row) error {
	cw := csv.NewWriter(s.W)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(fields(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// TableSink writes rows as an aligned text table for terminals.
type TableSink struct {
	W io.Writer
}

// Write implements Sink.
func (s TableSink) Write(rows []Row) error {
	tw := tabwriter.NewWriter(s.W, 0, 4, 2, ' ', tabwriter.AlignRight)
	line := func(cols []string) error {
		for _, c := range cols {
			if _, err := fmt.Fprintf(tw, "%s\t", c); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintln(tw)
		return err
	}
	if err := line(Header); err != nil {
		return err
	}
	for _, r := range rows {
		if err := line(fields(r)); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// MultiSink fans rows out to every sink in order, stopping at the first error.
type MultiSink []Sink

// Write implements Sink.
func (m MultiSink) Write(rows []Row) error {
	for _, s := range m {
		if err := s.Write(rows); err != nil {
			return err
		}
	}
	return nil
}
