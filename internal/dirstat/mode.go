package dirstat

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/idelchi/dutree/internal/numfmt"
)

// DefaultCutoff is the default fraction of the grand total below which subtrees are omitted.
const DefaultCutoff = 0.003

// Mode selects the metric a report is sorted, pruned and labelled by.
type Mode struct {
	name    string
	metric  func(*Node) uint64
	display func(*Node) string
}

//nolint:gochecknoglobals // Closed set of modes
var (
	// ApparentSize reports the logical size of files.
	ApparentSize = Mode{
		name:    "apparent-size",
		metric:  func(n *Node) uint64 { return n.ApparentSize },
		display: func(n *Node) string { return numfmt.IBytes(n.ApparentSize) },
	}
	// Size reports the storage actually allocated to files.
	Size = Mode{
		name:    "size",
		metric:  func(n *Node) uint64 { return n.Blocks },
		display: func(n *Node) string { return numfmt.IBytes(n.AllocatedSize()) },
	}
	// Files reports the number of regular files.
	Files = Mode{
		name:    "files",
		metric:  func(n *Node) uint64 { return uint64(n.Files) },
		display: func(n *Node) string { return numfmt.SIFiles(uint64(n.Files)) },
	}
)

// Modes returns all modes in the order they are documented.
func Modes() []Mode {
	return []Mode{ApparentSize, Size, Files}
}

// ModeNames returns the names of all modes.
func ModeNames() []string {
	modes := Modes()

	names := make([]string, 0, len(modes))
	for _, m := range modes {
		names = append(names, m.name)
	}

	return names
}

// ParseMode returns the mode called name.
func ParseMode(name string) (Mode, error) {
	for _, m := range Modes() {
		if m.name == name {
			return m, nil
		}
	}

	return Mode{}, fmt.Errorf("unknown mode %q: must be one of %s", name, strings.Join(ModeNames(), ", "))
}

// String returns the name of the mode. The zero Mode is Size.
func (m Mode) String() string {
	return m.resolve().name
}

// Metric returns the value n is sorted and pruned by.
func (m Mode) Metric(n *Node) uint64 {
	return m.resolve().metric(n)
}

// Display returns the formatted value shown for n.
func (m Mode) Display(n *Node) string {
	return m.resolve().display(n)
}

// Compare orders children by descending metric, then by name.
func (m Mode) Compare(a, b Child) int {
	if c := cmp.Compare(m.Metric(b.Node), m.Metric(a.Node)); c != 0 {
		return c
	}

	return cmp.Compare(a.Name, b.Name)
}

// Threshold returns the absolute cutoff derived from the grand total of root.
func (m Mode) Threshold(root *Node, fraction float64) uint64 {
	return uint64(float64(m.Metric(root)) * fraction)
}

// Renderer returns a renderer pruning everything below fraction of root's total.
// A depth above zero limits how many levels below the root are shown.
func (m Mode) Renderer(root *Node, fraction float64, depth int) Renderer {
	m = m.resolve()
	threshold := m.Threshold(root, fraction)

	return Renderer{
		Value:    m.display,
		Below:    func(n *Node) bool { return m.metric(n) < threshold },
		Compare:  m.Compare,
		MaxDepth: depth,
	}
}

func (m Mode) resolve() Mode {
	if m.metric == nil {
		return Size
	}

	return m
}
