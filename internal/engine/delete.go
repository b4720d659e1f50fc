package engine

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/vegasq/fsql/internal/fsys"
	"github.com/vegasq/fsql/internal/logger"
	"github.com/vegasq/fsql/internal/query"
)

var log = logger.For("engine")

// DeletionPlan is the ordered set of entries chosen for removal. It is
// produced without touching the filesystem, so building one repeatedly
// is a safe dry run; only CommitDelete mutates anything.
type DeletionPlan struct {
	ID        uuid.UUID
	Mode      query.SelectionMode
	Recursive bool
	Entries   []fsys.Entry
}

// Outcome classifies one entry's fate during commit
type Outcome int

const (
	Removed Outcome = iota
	Skipped
	Failed
)

// String returns the report spelling of the outcome
func (o Outcome) String() string {
	switch o {
	case Removed:
		return "removed"
	case Skipped:
		return "skipped"
	default:
		return "failed"
	}
}

// Failure reasons for a single item
const (
	ReasonNotFound          = "not found"
	ReasonPermissionDenied  = "permission denied"
	ReasonDirectoryNotEmpty = "directory not empty"
	ReasonParentRemoved     = "removed with parent"
)

// ItemResult is the outcome for one planned entry
type ItemResult struct {
	Entry   fsys.Entry
	Outcome Outcome
	Reason  string
	Err     error
}

// DeletionReport aggregates per-item outcomes of one committed plan
type DeletionReport struct {
	PlanID  uuid.UUID
	Items   []ItemResult
	Removed int
	Skipped int
	Failed  int
}

// PlanDelete builds a deletion plan for a delete query: the matching
// entries in pipeline order, cut down by the selection mode. A count
// attached to FIRST or MANY wins over a trailing LIMIT clause.
func (e *Engine) PlanDelete(q *query.DeleteQuery) (*DeletionPlan, error) {
	entries, err := e.matches(q.Path, q.Recursive, q.Where)
	if err != nil {
		return nil, err
	}

	count := q.Count
	if count == nil {
		count = q.Limit
	}
	entries = Limit(entries, count)

	return &DeletionPlan{
		ID:        uuid.New(),
		Mode:      q.Mode,
		Recursive: q.Recursive,
		Entries:   entries,
	}, nil
}

// CommitDelete removes each planned entry in order. Item failures never
// stop the batch; each outcome is recorded independently. An entry that
// sits under a directory already removed by this same plan is reported
// as skipped rather than failed.
func (e *Engine) CommitDelete(plan *DeletionPlan) *DeletionReport {
	report := &DeletionReport{PlanID: plan.ID}
	var removedDirs []string

	for _, entry := range plan.Entries {
		if parent := removedUnder(removedDirs, entry.Path); parent != "" {
			report.add(ItemResult{Entry: entry, Outcome: Skipped, Reason: ReasonParentRemoved})
			continue
		}

		var err error
		if plan.Recursive && entry.Type == fsys.TypeDir {
			err = os.RemoveAll(entry.Path)
		} else {
			err = os.Remove(entry.Path)
		}

		if err == nil {
			if entry.Type == fsys.TypeDir {
				removedDirs = append(removedDirs, entry.Path)
			}
			report.add(ItemResult{Entry: entry, Outcome: Removed})
			continue
		}

		reason := classifyRemoveError(err)
		log.Warn().Str("path", entry.Path).Str("reason", reason).Err(err).Msg("delete failed")
		report.add(ItemResult{Entry: entry, Outcome: Failed, Reason: reason, Err: err})
	}
	return report
}

func (r *DeletionReport) add(item ItemResult) {
	r.Items = append(r.Items, item)
	switch item.Outcome {
	case Removed:
		r.Removed++
	case Skipped:
		r.Skipped++
	default:
		r.Failed++
	}
}

// removedUnder returns the removed directory containing path, or ""
func removedUnder(removedDirs []string, path string) string {
	for _, dir := range removedDirs {
		if strings.HasPrefix(path, dir+string(os.PathSeparator)) {
			return dir
		}
	}
	return ""
}

func classifyRemoveError(err error) string {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ReasonNotFound
	case errors.Is(err, fs.ErrPermission):
		return ReasonPermissionDenied
	case isDirNotEmpty(err):
		return ReasonDirectoryNotEmpty
	default:
		return err.Error()
	}
}
