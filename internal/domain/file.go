package domain

import (
	"math"
	"path/filepath"
	"strings"
	"time"
)

// FileRecord is the metadata of one regular file captured at scan time
type FileRecord struct {
	Path       string
	Name       string
	Extension  string
	LastAccess time.Time
}

// NewFileRecord builds a record for the file at path
func NewFileRecord(path string, lastAccess time.Time) FileRecord {
	name := filepath.Base(path)
	return FileRecord{
		Path:       path,
		Name:       name,
		Extension:  Extension(name),
		LastAccess: lastAccess,
	}
}

// Extension returns the suffix of name starting at its final dot, or "" when
// there is none. Leading dots are part of the stem, so ".bashrc" has no
// extension while "archive.tar.gz" has ".gz".
func Extension(name string) string {
	name = filepath.Base(name)
	stem := strings.TrimLeft(name, ".")
	idx := strings.LastIndex(stem, ".")
	if idx < 0 {
		return ""
	}
	return stem[idx:]
}

// AgeDays returns the number of whole days between the last access and now,
// rounded down. An access time in the future yields a negative age.
func (f FileRecord) AgeDays(now time.Time) int {
	days := now.Sub(f.LastAccess).Hours() / 24
	return int(math.Floor(days))
}
