package install

import (
	"os"

	"github.com/framekit-dev/framekit/internal/fsutil"
)

// System abstracts the filesystem operations the lifecycle delegates to.
// The interface is package-local so unit tests can run against an in-memory
// fake without shared global state.
type System interface {
	Stat(name string) (os.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFileAtomic(filename string, data []byte, perm os.FileMode) error
	MkdirAll(path string, perm os.FileMode) error
	RemoveAll(path string) error
	CopyTree(src string, dst string) error
	LinkTree(src string, dst string) error
}

// RealSystem implements System using the OS filesystem.
type RealSystem struct{}

// Stat returns a FileInfo describing the named file.
func (RealSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// ReadFile reads the named file and returns the contents.
func (RealSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// WriteFileAtomic writes data to a file atomically by writing a temp file and renaming.
func (RealSystem) WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	return fsutil.WriteFileAtomic(filename, data, perm)
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (RealSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// RemoveAll removes path and any children it contains.
func (RealSystem) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

// CopyTree copies the directory tree at src to dst.
func (RealSystem) CopyTree(src string, dst string) error {
	return fsutil.CopyTree(src, dst)
}

// LinkTree makes dst a symlink pointing at src.
func (RealSystem) LinkTree(src string, dst string) error {
	return fsutil.LinkTree(src, dst)
}
