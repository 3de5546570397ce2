package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/idelchi/dutree/internal/dirstat"
)

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && isatty.IsTerminal(f.Fd())
}

// statusLine draws a single, redrawable status line on a terminal.
type statusLine struct {
	w      io.Writer
	active bool
}

func (s *statusLine) show(msg string) {
	fmt.Fprintf(s.w, "\r\033[2K%s\r", msg)

	s.active = true
}

func (s *statusLine) clear() {
	if s.active {
		fmt.Fprint(s.w, "\r\033[2K\r")

		s.active = false
	}
}

func logic(options dirstat.Options, stdout, stderr io.Writer) error {
	enableProgress := options.Output == "tree" &&
		!options.Debug &&
		isTerminal(stderr)

	status := &statusLine{w: stderr}

	// Diagnostics replace the status line, which is redrawn on the next tick.
	sink := dirstat.SinkFunc(func(op, path string, err error) {
		status.clear()
		dirstat.WriterSink{W: stderr}.Report(op, path, err)
	})

	// Simple progress callback that prints directly to stderr
	var progressHook func(files, bytes int64)

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(stderr, "\033[?25l")
		defer fmt.Fprint(stderr, "\033[?25h")

		progressHook = func(files, bytes int64) {
			status.show(fmt.Sprintf("Scanning… %d files, %s",
				files, humanize.IBytes(uint64(bytes)))) //nolint:gosec // Bytes is always positive
		}
	}

	result, err := dirstat.Run(options, sink, progressHook)

	// Clear the status line
	status.clear()

	if err != nil {
		return err
	}

	if options.Debug {
		fmt.Fprintf(stderr, "[debug]: scanned %s files, %s in %v with %d errors\n",
			humanize.Comma(int64(result.Root.Files)), humanize.IBytes(result.Root.ApparentSize),
			result.Elapsed, result.Errors)
	}

	renderer := options.Mode.Renderer(result.Root, options.Cutoff, options.Depth)

	switch options.Output {
	case "json":
		return PrintJSON(renderer.Report("", result.Root), stdout)
	case "tree":
		return PrintTree(renderer, result.Root, stdout)
	default:
		return fmt.Errorf("unknown output format: %s", options.Output)
	}
}
