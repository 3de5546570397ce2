package dirstat

import (
	"time"
)

// BlockSize is the size in bytes of one allocation unit as reported by st_blocks.
const BlockSize = 512

// Node holds the aggregated statistics of one directory or of the synthetic scan root.
type Node struct {
	// Files is the number of regular files contained directly or transitively.
	Files uint32
	// ApparentSize is the cumulative logical size of all contained regular files.
	ApparentSize uint64
	// Blocks is the cumulative number of allocation units of all contained regular files.
	Blocks uint64
	// Children maps subdirectory names to their completed statistics.
	Children map[string]*Node
}

// NewNode returns an empty node.
func NewNode() *Node {
	return &Node{Children: make(map[string]*Node)}
}

// AllocatedSize returns the number of bytes actually allocated on disk.
func (n *Node) AllocatedSize() uint64 {
	return n.Blocks * BlockSize
}

// AddFile counts one regular file.
func (n *Node) AddFile(size, blocks uint64) {
	n.Files++
	n.ApparentSize += size
	n.Blocks += blocks
}

// Attach folds a completed child into the scalars of n and stores it under name.
// A child already present under name is merged with the new one.
func (n *Node) Attach(name string, child *Node) {
	n.addScalars(child)

	if n.Children == nil {
		n.Children = make(map[string]*Node)
	}

	if existing, ok := n.Children[name]; ok {
		existing.Merge(child)

		return
	}

	n.Children[name] = child
}

// Merge adds the scalars of other to n and merges the children recursively.
func (n *Node) Merge(other *Node) {
	n.addScalars(other)

	for name, child := range other.Children {
		if n.Children == nil {
			n.Children = make(map[string]*Node)
		}

		if existing, ok := n.Children[name]; ok {
			existing.Merge(child)
		} else {
			n.Children[name] = child
		}
	}
}

func (n *Node) addScalars(other *Node) {
	n.Files += other.Files
	n.ApparentSize += other.ApparentSize
	n.Blocks += other.Blocks
}

// Options configures directory analysis and CLI behavior.
type Options struct {
	// Paths are the directories to analyze.
	Paths []string
	// Mode selects the reported metric.
	Mode Mode
	// Cutoff is the fraction of the grand total below which subtrees are omitted.
	Cutoff float64
	// CrossDevices allows the walk to descend into other filesystems.
	CrossDevices bool
	// Excludes contains regex patterns to exclude.
	Excludes []string
	// Depth is the maximum rendered depth (0=unlimited).
	Depth int
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
	// Debug indicates whether debug output is enabled.
	Debug bool
	// Output represents output format (tree or json).
	Output string
}

// Result is the outcome of a scan.
type Result struct {
	// Root is the synthetic scan root.
	Root *Node
	// Errors is the number of diagnostics reported during the scan.
	Errors int64
	// Elapsed is the total time taken for the scan.
	Elapsed time.Duration
}
