// Package bench drives the generator and the traversals over whole series
// of graph files and collects timing rows.
//
// The package offers the following key components:
//
//   - Plan / RunPlan:  generate graphs of N = Start, Start+Step, ... with
//     M = EdgeFactor·N (or a fixed Edges count) into a directory.
//   - IndexSource:     enumerate graph.FileName(dir, i, mode) for i in [From,To].
//   - Measure:         load + traverse every existing file, timing each pair.
//   - CSVSink, TableSink: write the collected rows.
//
// Error policy:
//
//   - A plan entry that fails builder validation is logged and skipped;
//     nothing is written for it.
//   - A truncated generation is logged as a warning by the builder and the
//     graph is written with its actual edge count.
//   - A missing input file is skipped (logged at debug level).
//   - Any other I/O or parse error aborts the run.
//
// Everything runs sequentially; ctx is checked between files and inside the
// traversals.
package bench
