package output

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/vegasq/fsql/internal/fsys"
	"github.com/vegasq/fsql/internal/query"
)

// CSVFormatter writes entries as CSV with a header row
type CSVFormatter struct {
	writer io.Writer
}

// NewCSVFormatter creates a new CSV formatter
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// SetOutput sets the output writer
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// Format writes a header row of the projected field names followed by
// one record per entry
func (c *CSVFormatter) Format(entries []fsys.Entry, fields []query.Field) error {
	if fields == nil {
		fields = query.AllFields
	}

	csvWriter := csv.NewWriter(c.writer)

	header := make([]string, len(fields))
	for i, f := range fields {
		header[i] = f.String()
	}
	if err := csvWriter.Write(header); err != nil {
		return err
	}

	for i := range entries {
		record := make([]string, len(fields))
		for j, f := range fields {
			record[j] = fmt.Sprintf("%v", fieldValue(&entries[i], f))
		}
		if err := csvWriter.Write(record); err != nil {
			return err
		}
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}
	return nil
}
