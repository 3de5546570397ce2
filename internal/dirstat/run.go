package dirstat

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"time"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// shouldExcludeByPattern checks if path matches any exclusion regex.
func shouldExcludeByPattern(path string, patterns []*regexp.Regexp) *regexp.Regexp {
	if len(patterns) == 0 {
		return nil
	}

	fPath := filepath.ToSlash(path)

	for _, re := range patterns {
		if re.MatchString(fPath) {
			return re
		}
	}

	return nil
}

// CompileExcludes compiles exclusion patterns.
func CompileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	excludeRegexes := make([]*regexp.Regexp, 0, len(patterns))

	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("compiling exclusion pattern %q: %w", p, err)
		}

		excludeRegexes = append(excludeRegexes, re)
	}

	return excludeRegexes, nil
}

// Walker builds statistics trees by recursive descent on the calling goroutine.
// A Walker is not safe for concurrent use.
type Walker struct {
	// FS is the filesystem to walk. Nil means OS.
	FS FileSystem
	// Sink receives diagnostics. Nil discards them.
	Sink Sink
	// Excludes skips entries whose slash-separated path matches any pattern.
	Excludes []*regexp.Regexp
	// Progress, if set, receives running totals at most once per ProgressInterval.
	Progress func(files, bytes int64)
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
	// Log receives debug output when Debug is set.
	Log io.Writer
	// Debug enables debug output.
	Debug bool

	errors       int64
	files        int64
	bytes        int64
	lastProgress time.Time
}

// Errors returns the number of diagnostics reported so far.
func (w *Walker) Errors() int64 {
	return w.errors
}

// Scan walks path and returns its statistics. With stayOnDevice set, entries on
// a device other than the one holding path are skipped. The returned bool is
// false when path could not be resolved or opened; the failure has then been
// reported.
func (w *Walker) Scan(path string, stayOnDevice bool) (*Node, bool) {
	if !stayOnDevice {
		return w.walk(path, nil)
	}

	dev, err := w.fs().Device(path)
	if err != nil {
		w.report(OpMetadata, path, err)

		return nil, false
	}

	w.log().printf("[debug]: scanning %s on device %d\n", path, dev)

	return w.walk(path, &dev)
}

// ScanAll scans every path and merges the results into one root.
// With a single path the root is that path's node; with several paths each
// becomes a child of the root named after the path as given.
// Paths that cannot be scanned are left out.
func (w *Walker) ScanAll(paths []string, stayOnDevice bool) *Node {
	root := NewNode()

	for _, path := range paths {
		node, ok := w.Scan(path, stayOnDevice)
		if !ok {
			continue
		}

		if len(paths) == 1 {
			return node
		}

		root.Attach(path, node)
	}

	return root
}

// walk builds the node for dir. Failures are reported and absorbed; the node
// always reflects whatever could be read. The returned bool is false when the
// directory could not be listed at all.
func (w *Walker) walk(dir string, dev *uint64) (*Node, bool) {
	node := NewNode()
	fsys := w.fs()
	log := w.log()

	names, err := fsys.ReadDir(dir)
	if err != nil {
		w.report(OpReadDir, dir, err)

		if len(names) == 0 {
			return node, false
		}
	}

	for _, name := range names {
		path := filepath.Join(dir, name)

		meta, err := fsys.Lstat(path)
		if err != nil {
			w.report(OpMetadata, path, err)

			continue
		}

		if dev != nil && meta.Dev != *dev {
			log.printf("[debug]: skipping %s (device %d, want %d)\n", path, meta.Dev, *dev)

			continue
		}

		if matchedPattern := shouldExcludeByPattern(path, w.Excludes); matchedPattern != nil {
			log.printf("[debug]: excluding %s\n", filepath.ToSlash(path))
			log.printf("	 matched regex: %s\n", matchedPattern.String())

			continue
		}

		switch {
		case meta.Mode.IsDir():
			if child, ok := w.walk(path, dev); ok {
				node.Attach(name, child)
			}
		case meta.Mode.IsRegular():
			node.AddFile(meta.Size, meta.Blocks)
			w.tick(meta.Size)
		default:
			log.printf("[debug]: ignoring %s (%s)\n", path, meta.Mode.Type())
		}
	}

	return node, true
}

func (w *Walker) report(op, path string, err error) {
	w.errors++

	if w.Sink != nil {
		w.Sink.Report(op, path, err)
	}
}

// tick updates running totals and invokes the progress hook when due.
func (w *Walker) tick(size uint64) {
	w.files++
	w.bytes += int64(size) //nolint:gosec // File sizes fit in int64

	if w.Progress == nil {
		return
	}

	interval := w.ProgressInterval
	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	if now := time.Now(); now.Sub(w.lastProgress) >= interval {
		w.lastProgress = now
		w.Progress(w.files, w.bytes)
	}
}

func (w *Walker) fs() FileSystem {
	if w.FS == nil {
		return OS{}
	}

	return w.FS
}

func (w *Walker) log() logger {
	return logger{w: w.Log, enabled: w.Debug}
}

// Run scans every path in opt.Paths and returns the merged statistics.
// See Walker.ScanAll for how several paths are combined.
//
// Unreadable directories and entries are reported to sink and skipped.
// Run only fails on invalid options. Progress updates are sent to
// progressHook if provided.
func Run(opt Options, sink Sink, progressHook func(int64, int64)) (*Result, error) {
	excludeRegexes, err := CompileExcludes(opt.Excludes)
	if err != nil {
		return nil, err
	}

	paths := opt.Paths
	if len(paths) == 0 {
		paths = []string{"."}
	}

	walker := &Walker{
		Sink:             sink,
		Excludes:         excludeRegexes,
		Progress:         progressHook,
		ProgressInterval: opt.ProgressInterval,
		Log:              os.Stderr,
		Debug:            opt.Debug,
	}

	start := time.Now()

	root := walker.ScanAll(paths, !opt.CrossDevices)

	return &Result{
		Root:    root,
		Errors:  walker.Errors(),
		Elapsed: time.Since(start),
	}, nil
}
