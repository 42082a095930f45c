package filesystems

import (
	"io/fs"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
)

// MemoryFS implements FileSystem for in-memory filesystem operations
type MemoryFS struct {
	mu    sync.Mutex
	files map[string][]byte
	dirs  map[string]bool

	// failMkdir makes MkdirAll fail for the listed paths
	failMkdir map[string]error
	mkdirs    []string
}

// NewMemoryFS creates a new MemoryFS instance
func NewMemoryFS() *MemoryFS {
	return &MemoryFS{
		files:     make(map[string][]byte),
		dirs:      map[string]bool{"/": true},
		failMkdir: make(map[string]error),
	}
}

// AddFile adds a file to the memory filesystem
func (mfs *MemoryFS) AddFile(name string, content []byte) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	mfs.files[path.Clean(name)] = content
	mfs.addParents(name)
}

// AddDir adds a directory to the memory filesystem
func (mfs *MemoryFS) AddDir(name string) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	mfs.dirs[path.Clean(name)] = true
	mfs.addParents(name)
}

// FailMkdir makes subsequent MkdirAll calls for name return err
func (mfs *MemoryFS) FailMkdir(name string, err error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.failMkdir[path.Clean(name)] = err
}

// Mkdirs returns every path MkdirAll actually created, in call order
func (mfs *MemoryFS) Mkdirs() []string {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	return append([]string(nil), mfs.mkdirs...)
}

func (mfs *MemoryFS) addParents(name string) {
	dir := path.Dir(path.Clean(name))
	for dir != "." && dir != "/" {
		mfs.dirs[dir] = true
		dir = path.Dir(dir)
	}
}

func (mfs *MemoryFS) ReadFile(name string) ([]byte, error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	content, exists := mfs.files[path.Clean(name)]
	if !exists {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return content, nil
}

func (mfs *MemoryFS) Stat(name string) (FileInfo, error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	cleanName := path.Clean(name)
	if mfs.dirs[cleanName] {
		return &memoryFileInfo{
			name:    path.Base(cleanName),
			mode:    fs.ModeDir | 0755,
			modTime: time.Now(),
			isDir:   true,
		}, nil
	}
	if content, exists := mfs.files[cleanName]; exists {
		return &memoryFileInfo{
			name:    path.Base(cleanName),
			size:    int64(len(content)),
			mode:    0644,
			modTime: time.Now(),
		}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
}

func (mfs *MemoryFS) MkdirAll(name string, perm fs.FileMode) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	cleanName := path.Clean(name)
	if err, ok := mfs.failMkdir[cleanName]; ok {
		return &fs.PathError{Op: "mkdir", Path: name, Err: err}
	}
	// a file anywhere along the path blocks creation
	for dir := cleanName; dir != "." && dir != "/"; dir = path.Dir(dir) {
		if _, isFile := mfs.files[dir]; isFile {
			return &fs.PathError{Op: "mkdir", Path: dir, Err: errors.New("not a directory")}
		}
	}
	if mfs.dirs[cleanName] {
		return nil
	}
	mfs.dirs[cleanName] = true
	mfs.addParents(cleanName)
	mfs.mkdirs = append(mfs.mkdirs, cleanName)
	return nil
}

func (mfs *MemoryFS) Join(elem ...string) string {
	return path.Join(elem...)
}

func (mfs *MemoryFS) IsAbs(p string) bool {
	return strings.HasPrefix(p, "/")
}

// memoryFileInfo implements FileInfo for memory filesystem
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (fi *memoryFileInfo) Name() string {
	return fi.name
}

func (fi *memoryFileInfo) Size() int64 {
	return fi.size
}

func (fi *memoryFileInfo) Mode() fs.FileMode {
	return fi.mode
}

func (fi *memoryFileInfo) ModTime() time.Time {
	return fi.modTime
}

func (fi *memoryFileInfo) IsDir() bool {
	return fi.isDir
}

func (fi *memoryFileInfo) Sys() interface{} {
	return nil
}
