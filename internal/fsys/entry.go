// Package fsys builds point-in-time snapshots of filesystem entries and
// walks directory trees to produce them.
package fsys

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// EntryType classifies a filesystem object
type EntryType string

const (
	TypeFile    EntryType = "file"
	TypeDir     EntryType = "dir"
	TypeSymlink EntryType = "symlink"
)

// Entry is a snapshot of one filesystem object taken at stat time.
// It is never refreshed; a query operates on one consistent snapshot
// per entry.
type Entry struct {
	Name        string
	Path        string
	Size        int64
	Modified    time.Time
	Created     time.Time
	Ext         string
	Permissions string
	Owner       string
	Hidden      bool
	ReadOnly    bool
	Type        EntryType
}

// NewEntry builds an Entry from a stat result. path should be the full
// path of the object; info comes from Lstat so symlinks are reported as
// symlinks rather than their targets.
func NewEntry(path string, info fs.FileInfo) Entry {
	name := info.Name()

	e := Entry{
		Name:        name,
		Path:        path,
		Size:        info.Size(),
		Modified:    info.ModTime(),
		Ext:         extension(name),
		Permissions: permissionString(info.Mode()),
		Hidden:      strings.HasPrefix(name, "."),
		ReadOnly:    info.Mode().Perm()&0o200 == 0,
		Type:        entryType(info.Mode()),
	}
	e.Owner, e.Created = ownerAndCreated(info)
	if e.Created.IsZero() {
		e.Created = e.Modified
	}
	return e
}

// Snapshot stats one path and returns its Entry
func Snapshot(path string) (Entry, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return Entry{}, err
	}
	return NewEntry(path, info), nil
}

// extension returns the extension without the leading dot, or ""
func extension(name string) string {
	ext := filepath.Ext(name)
	return strings.TrimPrefix(ext, ".")
}

// entryType maps a file mode to the closed type set
func entryType(mode fs.FileMode) EntryType {
	switch {
	case mode&fs.ModeSymlink != 0:
		return TypeSymlink
	case mode.IsDir():
		return TypeDir
	default:
		return TypeFile
	}
}
