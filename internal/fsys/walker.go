package fsys

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/vegasq/fsql/internal/logger"
)

// Root-path failures are fatal to the query that caused them.
var (
	ErrPathNotFound    = errors.New("path not found")
	ErrPathNotReadable = errors.New("path not readable")
)

var log = logger.For("fsys")

// Walk enumerates the entries under root. Non-recursive walks visit
// only direct children; recursive walks visit the full subtree
// depth-first. The root itself is never included. A stat failure on a
// single object is logged and that object skipped; only failures on the
// root itself are returned as errors.
func Walk(root string, recursive bool) ([]Entry, error) {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrPathNotFound
		}
		return nil, ErrPathNotReadable
	}
	if !info.IsDir() {
		// A file root is its own one-entry result
		return []Entry{NewEntry(root, info)}, nil
	}

	if recursive {
		return walkRecursive(root)
	}
	return walkShallow(root)
}

func walkShallow(root string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(root)
	if err != nil {
		return nil, ErrPathNotReadable
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		path := filepath.Join(root, de.Name())
		info, err := os.Lstat(path)
		if err != nil {
			log.Warn().Str("path", path).Err(err).Msg("skipping entry, stat failed")
			continue
		}
		entries = append(entries, NewEntry(path, info))
	}
	return entries, nil
}

func walkRecursive(root string) ([]Entry, error) {
	var entries []Entry
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// A failure on the root itself dooms the whole walk;
			// anything deeper is skipped and reported
			if path == root {
				return err
			}
			log.Warn().Str("path", path).Err(err).Msg("skipping entry, walk failed")
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if path == root {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			log.Warn().Str("path", path).Err(err).Msg("skipping entry, stat failed")
			return nil
		}
		entries = append(entries, NewEntry(path, info))
		return nil
	})
	if err != nil {
		return nil, ErrPathNotReadable
	}
	return entries, nil
}
