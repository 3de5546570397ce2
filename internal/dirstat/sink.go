package dirstat

import (
	"fmt"
	"io"
)

// Sink receives non-fatal diagnostics raised during a walk.
type Sink interface {
	// Report records that op failed on path with err.
	Report(op, path string, err error)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(op, path string, err error)

// Report implements Sink.
func (f SinkFunc) Report(op, path string, err error) {
	f(op, path, err)
}

// WriterSink writes one line per diagnostic to W.
type WriterSink struct {
	W io.Writer
}

// Report implements Sink.
func (s WriterSink) Report(op, path string, err error) {
	fmt.Fprintf(s.W, "%s error: %v @ %q\n", op, err, path)
}

// Diagnostic operations.
const (
	OpReadDir  = "read_dir"
	OpMetadata = "metadata"
)

// logger provides conditional debug output.
type logger struct {
	w       io.Writer
	enabled bool
}

// printf prints debug output if logging is enabled.
func (l logger) printf(format string, args ...any) {
	if l.enabled && l.w != nil {
		fmt.Fprintf(l.w, format, args...)
	}
}
