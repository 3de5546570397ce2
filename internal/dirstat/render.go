package dirstat

import (
	"fmt"
	"io"
	"slices"
)

// indentStep is the indentation added per tree level.
const indentStep = "    "

// Child is a named subdirectory.
type Child struct {
	Name string
	Node *Node
}

// Renderer prints a statistics tree.
type Renderer struct {
	// Value formats the metric shown for a node.
	Value func(*Node) string
	// Below reports whether a node falls under the cutoff.
	Below func(*Node) bool
	// Compare orders siblings; it must sort by the metric Below tests, largest first.
	Compare func(a, b Child) int
	// MaxDepth limits the levels shown below the root (0=unlimited).
	MaxDepth int
}

// Render writes one line per shown node, depth-first, indenting each level by four spaces.
func (r Renderer) Render(w io.Writer, name string, node *Node) error {
	return r.render(w, "", name, node, 0)
}

func (r Renderer) render(w io.Writer, indent, name string, node *Node, depth int) error {
	if _, err := fmt.Fprintf(w, "%s%s  %s\n", indent, r.Value(node), name); err != nil {
		return err
	}

	if r.MaxDepth > 0 && depth >= r.MaxDepth {
		return nil
	}

	for _, child := range r.Visible(node) {
		if err := r.render(w, indent+indentStep, child.Name, child.Node, depth+1); err != nil {
			return err
		}
	}

	return nil
}

// Visible returns the sorted children of node up to, not including, the
// first one below the cutoff. Everything after it is smaller and is dropped too.
func (r Renderer) Visible(node *Node) []Child {
	children := make([]Child, 0, len(node.Children))
	for name, child := range node.Children {
		children = append(children, Child{Name: name, Node: child})
	}

	slices.SortFunc(children, r.Compare)

	for i, child := range children {
		if r.Below(child.Node) {
			return children[:i]
		}
	}

	return children
}

// Entry is the JSON form of a shown node.
type Entry struct {
	// Name is the directory name; empty for the root.
	Name string `json:"name"`
	// Files is the number of regular files.
	Files uint32 `json:"files"`
	// ApparentSize is the logical size in bytes.
	ApparentSize uint64 `json:"apparent_size"`
	// AllocatedSize is the allocated size in bytes.
	AllocatedSize uint64 `json:"allocated_size"`
	// Children are the shown subdirectories, in display order.
	Children []Entry `json:"children,omitempty"`
}

// Report returns the same pruned, ordered tree Render prints.
func (r Renderer) Report(name string, node *Node) Entry {
	return r.report(name, node, 0)
}

func (r Renderer) report(name string, node *Node, depth int) Entry {
	entry := Entry{
		Name:          name,
		Files:         node.Files,
		ApparentSize:  node.ApparentSize,
		AllocatedSize: node.AllocatedSize(),
	}

	if r.MaxDepth > 0 && depth >= r.MaxDepth {
		return entry
	}

	for _, child := range r.Visible(node) {
		entry.Children = append(entry.Children, r.report(child.Name, child.Node, depth+1))
	}

	return entry
}
