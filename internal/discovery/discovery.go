package discovery

import (
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/compose-spec/compose-go/v2/cli"

	"github.com/youroldmangaming/Apple-Container-Compose/internal/filesystems"
)

const (
	TypeCompose = "compose"

	// DefaultEnvFile is the global environment file read next to the descriptor
	DefaultEnvFile = ".env"
)

var ErrDescriptorNotFound = errors.New("no compose descriptor found")

// Descriptor represents a discovered compose file
type Descriptor struct {
	Path string
	Type string
}

// Dir returns the directory holding the descriptor. Relative paths in the
// descriptor resolve against it.
func (d Descriptor) Dir() string {
	return filepath.Dir(d.Path)
}

// Locator finds the descriptor in a working directory
type Locator struct {
	fs    filesystems.FileSystem
	names []string
}

func NewLocator(fsys filesystems.FileSystem) *Locator {
	return &Locator{fs: fsys, names: cli.DefaultFileNames}
}

// Locate returns the descriptor at file when set, relative to dir unless
// absolute. Otherwise the first standard compose file name present in dir
// wins.
func (l *Locator) Locate(dir, file string) (Descriptor, error) {
	if file != "" {
		path := file
		if !l.fs.IsAbs(path) {
			path = l.fs.Join(dir, path)
		}
		if !l.isFile(path) {
			return Descriptor{}, errors.Wrapf(ErrDescriptorNotFound, "%s", path)
		}
		return Descriptor{Path: path, Type: TypeCompose}, nil
	}

	for _, name := range l.names {
		path := l.fs.Join(dir, name)
		if l.isFile(path) {
			return Descriptor{Path: path, Type: TypeCompose}, nil
		}
	}

	return Descriptor{}, errors.WithHintf(
		errors.Wrapf(ErrDescriptorNotFound, "in %s", dir),
		"expected one of: %s, or pass --file", strings.Join(l.names, ", "))
}

// EnvFile returns the path of the global environment file. An explicit path
// is taken relative to dir; the default sits next to the descriptor.
func (l *Locator) EnvFile(descriptor Descriptor, dir, explicit string) string {
	if explicit == "" {
		return l.fs.Join(descriptor.Dir(), DefaultEnvFile)
	}
	if l.fs.IsAbs(explicit) {
		return explicit
	}
	return l.fs.Join(dir, explicit)
}

func (l *Locator) isFile(path string) bool {
	info, err := l.fs.Stat(path)
	return err == nil && !info.IsDir()
}
