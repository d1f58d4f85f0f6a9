// Package filesystem provides filesystem implementations for modlink.
//
// This package defines the FS interface used by every component that
// touches the disk, along with the standard OS implementation and an
// afero-backed implementation for tests.
package filesystem

import "io/fs"

// FS abstracts the filesystem operations modlink performs
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	ReadDir(name string) ([]fs.DirEntry, error)
	MkdirAll(path string, perm fs.FileMode) error

	// Symlink operations
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)

	// Other operations
	Remove(name string) error
	RemoveAll(path string) error
	Rename(oldpath, newpath string) error
}
