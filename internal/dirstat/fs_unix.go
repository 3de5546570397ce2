//go:build unix

package dirstat

import (
	"io/fs"
	"syscall"

	"golang.org/x/sys/unix"
)

// metaFromInfo extracts device and block counts from the platform stat data.
func metaFromInfo(info fs.FileInfo) Meta {
	meta := Meta{Mode: info.Mode(), Size: sizeOf(info)}

	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		meta.Blocks = estimateBlocks(meta.Size)

		return meta
	}

	meta.Blocks = uint64(stat.Blocks) //nolint:gosec // st_blocks is never negative
	meta.Dev = uint64(stat.Dev)       //nolint:gosec,unconvert // Dev width differs per platform

	return meta
}

// deviceOf stats path, following symlinks, and returns its device id.
func deviceOf(path string) (uint64, error) {
	var stat unix.Stat_t
	if err := unix.Stat(path, &stat); err != nil {
		return 0, &fs.PathError{Op: "stat", Path: path, Err: err}
	}

	return uint64(stat.Dev), nil //nolint:gosec,unconvert // Dev width differs per platform
}
