package ports

import "time"

// Entry is one immediate child of a scanned directory
type Entry struct {
	Name    string
	Path    string // Full path to the entry
	Regular bool   // false for directories, symlinks, devices and sockets
}

// FileSystem defines the filesystem operations a cleanup run needs.
// Every method may fail; callers decide whether a failure is fatal.
type FileSystem interface {
	// Exists reports whether path exists
	Exists(path string) (bool, error)

	// ListChildren returns the immediate children of dir in enumeration order
	ListChildren(dir string) ([]Entry, error)

	// LastAccessTime returns the last access time reported for path
	LastAccessTime(path string) (time.Time, error)

	// Move moves the file at src into destDir, keeping its name.
	// It returns the final path and never overwrites an existing file.
	Move(src, destDir string) (string, error)

	// EnsureDirectory creates path and any parents if missing
	EnsureDirectory(path string) error
}
