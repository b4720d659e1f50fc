package output

import (
	"encoding/json"
	"io"

	"github.com/vegasq/fsql/internal/fsys"
	"github.com/vegasq/fsql/internal/query"
)

// JSONFormatter writes entries as JSON Lines, one object per line
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON Lines formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes one JSON object per entry, restricted to the projected
// fields. Sizes are raw byte counts, timestamps RFC3339.
func (j *JSONFormatter) Format(entries []fsys.Entry, fields []query.Field) error {
	if fields == nil {
		fields = query.AllFields
	}

	encoder := json.NewEncoder(j.writer)
	for i := range entries {
		row := make(map[string]any, len(fields))
		for _, f := range fields {
			row[f.String()] = fieldValue(&entries[i], f)
		}
		if err := encoder.Encode(row); err != nil {
			return err
		}
	}
	return nil
}
