package filesystem

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/djherbis/times"

	"declutter/internal/ports"
)

// ErrDestinationExists is returned when a move would overwrite a file
var ErrDestinationExists = errors.New("destination already exists")

// FileSystem implements ports.FileSystem on top of the local disk
type FileSystem struct{}

// Ensure FileSystem implements ports.FileSystem
var _ ports.FileSystem = (*FileSystem)(nil)

// New creates a new local filesystem adapter
func New() *FileSystem {
	return &FileSystem{}
}

// Exists reports whether path exists
func (f *FileSystem) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// ListChildren returns the immediate children of dir.
// Symlinks count as regular only when they resolve to a regular file.
func (f *FileSystem) ListChildren(dir string) ([]ports.Entry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	children := make([]ports.Entry, 0, len(entries))
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		children = append(children, ports.Entry{
			Name:    entry.Name(),
			Path:    path,
			Regular: isRegular(path, entry),
		})
	}
	return children, nil
}

func isRegular(path string, entry os.DirEntry) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// LastAccessTime returns the access time recorded by the filesystem
func (f *FileSystem) LastAccessTime(path string) (time.Time, error) {
	ts, err := times.Stat(path)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to stat file: %w", err)
	}
	return ts.AccessTime(), nil
}

// Move renames src into destDir, keeping the file name.
// An existing file at the target is never replaced.
func (f *FileSystem) Move(src, destDir string) (string, error) {
	target := filepath.Join(destDir, filepath.Base(src))

	if _, err := os.Lstat(target); err == nil {
		return "", fmt.Errorf("%w: %s", ErrDestinationExists, target)
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("failed to check destination: %w", err)
	}

	if err := os.Rename(src, target); err != nil {
		return "", fmt.Errorf("failed to move file: %w", err)
	}
	return target, nil
}

// EnsureDirectory creates path and any missing parents
func (f *FileSystem) EnsureDirectory(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}
