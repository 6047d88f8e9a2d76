package theme

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Filesystem abstracts the directory, file and link operations the
// registry performs, so tests can substitute an in-memory double.
type Filesystem interface {
	// ListDirs returns the paths of the immediate subdirectories of dir.
	ListDirs(dir string) ([]string, error)

	// Exists reports whether path refers to an existing entry of any
	// kind, including a dangling symlink.
	Exists(path string) bool

	// ReadFile returns the file contents. Absence is reported with an
	// error satisfying errors.Is(err, fs.ErrNotExist).
	ReadFile(path string) ([]byte, error)

	// Symlink links newname to target. An entry already present at
	// newname is not an error: two processes may race on creation and
	// the loser must land on the same outcome as the idempotent check.
	Symlink(target, newname string) error

	// RemoveAll deletes path and everything below it. Absence is not
	// an error.
	RemoveAll(path string) error
}

// OSFilesystem is the production Filesystem backed by the os package.
type OSFilesystem struct{}

func (OSFilesystem) ListDirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var dirs []string
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, filepath.Join(dir, e.Name()))
		}
	}
	return dirs, nil
}

// Exists uses Lstat so a symlink counts even when its target is gone.
func (OSFilesystem) Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

func (OSFilesystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (OSFilesystem) Symlink(target, newname string) error {
	err := os.Symlink(target, newname)
	if err != nil && errors.Is(err, fs.ErrExist) {
		return nil
	}
	return err
}

func (OSFilesystem) RemoveAll(path string) error {
	return os.RemoveAll(path)
}
