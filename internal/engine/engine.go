package engine

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/vegasq/fsql/internal/fsys"
	"github.com/vegasq/fsql/internal/query"
)

// Engine runs parsed queries against the filesystem. Root is the
// working directory used to resolve relative query paths; Recursive is
// the traversal default for select queries (delete queries carry their
// own flag in the grammar).
type Engine struct {
	Root      string
	Recursive bool
}

// New creates an engine rooted at dir
func New(dir string) *Engine {
	return &Engine{Root: dir}
}

// resolvePath expands ~ and anchors relative paths at the engine root
func (e *Engine) resolvePath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	if filepath.IsAbs(path) || e.Root == "" {
		return path
	}
	return filepath.Join(e.Root, path)
}

// Select runs a select query: walk, filter, order, limit. Root-path
// failures are fatal; per-entry stat failures were already skipped by
// the walker. The returned entries always carry every attribute; the
// query's field projection only affects rendering downstream.
func (e *Engine) Select(q *query.SelectQuery) ([]fsys.Entry, error) {
	entries, err := e.matches(q.Path, e.Recursive, q.Where)
	if err != nil {
		return nil, err
	}
	Order(entries, q.OrderBy)
	return Limit(entries, q.Limit), nil
}

// matches walks root and keeps the entries satisfying cond
func (e *Engine) matches(path string, recursive bool, cond query.ConditionNode) ([]fsys.Entry, error) {
	entries, err := fsys.Walk(e.resolvePath(path), recursive)
	if err != nil {
		return nil, err
	}
	if cond == nil {
		return entries, nil
	}

	matched := entries[:0]
	for i := range entries {
		if Evaluate(cond, &entries[i]) {
			matched = append(matched, entries[i])
		}
	}
	return matched, nil
}
