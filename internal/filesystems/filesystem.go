package filesystems

import (
	"io/fs"
	"time"
)

// FileSystem abstracts the host filesystem operations the interpreter needs
type FileSystem interface {
	// ReadFile reads the named file and returns its contents
	ReadFile(name string) ([]byte, error)

	// Stat returns file information for the named path
	Stat(name string) (FileInfo, error)

	// MkdirAll creates a directory along with any missing parents
	MkdirAll(name string, perm fs.FileMode) error

	// Join joins path elements into a single path
	Join(elem ...string) string

	// IsAbs reports whether the path is absolute
	IsAbs(path string) bool
}

// FileInfo provides information about a file
type FileInfo interface {
	Name() string
	Size() int64
	Mode() fs.FileMode
	ModTime() time.Time
	IsDir() bool
	Sys() interface{}
}

// ErrNotExist is returned, wrapped, when a path does not exist
var ErrNotExist = fs.ErrNotExist
