package dirstat_test

import (
	"io/fs"
	"path/filepath"

	"github.com/idelchi/dutree/internal/dirstat"
)

// fakeFS is an in-memory FileSystem with injectable device ids and failures.
type fakeFS struct {
	entries    map[string][]string
	metas      map[string]dirstat.Meta
	readDirErr map[string]error
	lstatErr   map[string]error
}

func newFakeFS() *fakeFS {
	return &fakeFS{
		entries:    make(map[string][]string),
		metas:      make(map[string]dirstat.Meta),
		readDirErr: make(map[string]error),
		lstatErr:   make(map[string]error),
	}
}

func (f *fakeFS) dir(path string, dev uint64) *fakeFS {
	f.metas[path] = dirstat.Meta{Mode: fs.ModeDir | 0o755, Dev: dev}
	if _, ok := f.entries[path]; !ok {
		f.entries[path] = []string{}
	}

	f.link(path)

	return f
}

func (f *fakeFS) file(path string, size, blocks, dev uint64) *fakeFS {
	f.metas[path] = dirstat.Meta{Mode: 0o644, Size: size, Blocks: blocks, Dev: dev}
	f.link(path)

	return f
}

func (f *fakeFS) special(path string, mode fs.FileMode, size uint64) *fakeFS {
	f.metas[path] = dirstat.Meta{Mode: mode, Size: size, Blocks: 8}
	f.link(path)

	return f
}

func (f *fakeFS) link(path string) {
	parent := filepath.Dir(path)
	if parent == path {
		return
	}

	f.entries[parent] = append(f.entries[parent], filepath.Base(path))
}

func (f *fakeFS) ReadDir(path string) ([]string, error) {
	names, ok := f.entries[path]
	if err := f.readDirErr[path]; err != nil {
		return names, err
	}

	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}

	return names, nil
}

func (f *fakeFS) Lstat(path string) (dirstat.Meta, error) {
	if err := f.lstatErr[path]; err != nil {
		return dirstat.Meta{}, err
	}

	meta, ok := f.metas[path]
	if !ok {
		return dirstat.Meta{}, &fs.PathError{Op: "lstat", Path: path, Err: fs.ErrNotExist}
	}

	return meta, nil
}

func (f *fakeFS) Device(path string) (uint64, error) {
	meta, err := f.Lstat(path)
	if err != nil {
		return 0, err
	}

	return meta.Dev, nil
}

type diagnostic struct {
	op   string
	path string
}

// collect returns a sink appending every diagnostic to got.
func collect(got *[]diagnostic) dirstat.Sink {
	return dirstat.SinkFunc(func(op, path string, _ error) {
		*got = append(*got, diagnostic{op: op, path: path})
	})
}
