package filesystems

import (
	"io/fs"
	"sync"
)

// DryRunFS reads through to another FileSystem but only records directory
// creation
type DryRunFS struct {
	FileSystem

	mu     sync.Mutex
	mkdirs []string
}

func NewDryRunFS(base FileSystem) *DryRunFS {
	return &DryRunFS{FileSystem: base}
}

func (d *DryRunFS) MkdirAll(name string, perm fs.FileMode) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.mkdirs = append(d.mkdirs, name)
	return nil
}

// Mkdirs returns the directories that would have been created
func (d *DryRunFS) Mkdirs() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.mkdirs...)
}
