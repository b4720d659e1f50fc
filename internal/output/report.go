package output

import (
	"fmt"
	"io"

	"github.com/vegasq/fsql/internal/engine"
)

// WriteReport renders a deletion report: one line per item, then the
// aggregate counts
func WriteReport(w io.Writer, report *engine.DeletionReport) error {
	for _, item := range report.Items {
		line := fmt.Sprintf("%s %s", item.Outcome, item.Entry.Path)
		if item.Reason != "" {
			line += " (" + item.Reason + ")"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d removed, %d skipped, %d failed\n",
		report.Removed, report.Skipped, report.Failed)
	return err
}
