//go:build !unix

package dirstat

import (
	"io/fs"
	"os"
)

// metaFromInfo estimates block usage where no stat data is available.
// All files report device 0, so the device filter never excludes anything.
func metaFromInfo(info fs.FileInfo) Meta {
	size := sizeOf(info)

	return Meta{Mode: info.Mode(), Size: size, Blocks: estimateBlocks(size)}
}

// deviceOf only checks that path is reachable.
func deviceOf(path string) (uint64, error) {
	if _, err := os.Stat(path); err != nil {
		return 0, err
	}

	return 0, nil
}
