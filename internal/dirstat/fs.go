package dirstat

import (
	"io/fs"
	"os"
)

// Meta is the subset of file metadata the walk needs.
type Meta struct {
	// Mode holds the file type bits.
	Mode fs.FileMode
	// Size is the apparent size in bytes.
	Size uint64
	// Blocks is the number of allocated 512-byte units.
	Blocks uint64
	// Dev is the id of the device holding the file.
	Dev uint64
}

// FileSystem is the view of the filesystem used by a Walker.
type FileSystem interface {
	// ReadDir lists the entry names of a directory. Names read before a failure
	// are returned along with the error.
	ReadDir(path string) ([]string, error)
	// Lstat returns the metadata of path without following symlinks.
	Lstat(path string) (Meta, error)
	// Device returns the device id of path, following symlinks.
	Device(path string) (uint64, error)
}

// OS is the FileSystem backed by the operating system.
type OS struct{}

// ReadDir implements FileSystem.
func (OS) ReadDir(path string) ([]string, error) {
	entries, err := os.ReadDir(path)

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}

	return names, err
}

// Lstat implements FileSystem.
func (OS) Lstat(path string) (Meta, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return Meta{}, err
	}

	return metaFromInfo(info), nil
}

// Device implements FileSystem.
func (OS) Device(path string) (uint64, error) {
	return deviceOf(path)
}

// sizeOf converts a FileInfo size, which is never negative for regular files.
func sizeOf(info fs.FileInfo) uint64 {
	if info.Size() < 0 {
		return 0
	}

	return uint64(info.Size())
}

// estimateBlocks rounds size up to whole allocation units.
func estimateBlocks(size uint64) uint64 {
	return (size + BlockSize - 1) / BlockSize
}
