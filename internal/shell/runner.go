// Package shell runs queries on behalf of the CLI and the interactive
// prompt, inserting the delete confirmation between plan and commit.
package shell

import (
	"fmt"
	"io"

	"github.com/vegasq/fsql/internal/engine"
	"github.com/vegasq/fsql/internal/fsys"
	"github.com/vegasq/fsql/internal/output"
	"github.com/vegasq/fsql/internal/query"
	"github.com/vegasq/fsql/internal/theme"
)

// Runner executes query text end to end: parse, run, render. The
// one-shot CLI and the interactive shell share one Runner so both paths
// confirm deletions the same way.
type Runner struct {
	Engine      *engine.Engine
	Theme       *theme.Theme
	Format      string
	Out         io.Writer
	AutoConfirm bool
	// Confirm asks the user before a commit; nil with AutoConfirm off
	// aborts every delete
	Confirm func(prompt string) bool
}

// Execute parses and runs one statement
func (r *Runner) Execute(text string) error {
	q, err := query.Parse(text)
	if err != nil {
		return err
	}

	switch stmt := q.(type) {
	case *query.SelectQuery:
		return r.runSelect(stmt)
	case *query.DeleteQuery:
		return r.runDelete(stmt)
	default:
		return fmt.Errorf("unsupported statement %T", q)
	}
}

func (r *Runner) runSelect(q *query.SelectQuery) error {
	entries, err := r.Engine.Select(q)
	if err != nil {
		return err
	}
	return r.render(entries, q.Fields)
}

func (r *Runner) runDelete(q *query.DeleteQuery) error {
	plan, err := r.Engine.PlanDelete(q)
	if err != nil {
		return err
	}
	if len(plan.Entries) == 0 {
		_, err := fmt.Fprintln(r.Out, "no matching entries")
		return err
	}

	// Show what would be removed before asking
	if err := r.render(plan.Entries, nil); err != nil {
		return err
	}

	if !r.AutoConfirm {
		prompt := fmt.Sprintf("Delete %d entries? [y/N] ", len(plan.Entries))
		if r.Confirm == nil || !r.Confirm(prompt) {
			_, err := fmt.Fprintln(r.Out, "aborted")
			return err
		}
	}

	report := r.Engine.CommitDelete(plan)
	return output.WriteReport(r.Out, report)
}

func (r *Runner) render(entries []fsys.Entry, fields []query.Field) error {
	format := r.Format
	if format == "" && r.Theme != nil {
		format = r.Theme.Format
	}
	formatter, err := output.New(format, r.Out)
	if err != nil {
		return err
	}
	if table, ok := formatter.(*output.TableFormatter); ok && r.Theme != nil {
		table.SetTheme(r.Theme)
	}
	return formatter.Format(entries, fields)
}
