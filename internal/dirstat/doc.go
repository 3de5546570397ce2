// Package dirstat provides per-directory disk usage collection and reporting.
//
// It walks directory trees depth-first on a single goroutine, aggregates
// apparent size, allocated blocks and file counts bottom-up into a tree of
// Node values, and renders that tree sorted by the selected metric while
// pruning subtrees below a global cutoff.
package dirstat
