package output

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/vegasq/fsql/internal/fsys"
	"github.com/vegasq/fsql/internal/query"
	"github.com/vegasq/fsql/internal/theme"
)

// Columns shown by `select *` in table mode
var defaultTableFields = []query.Field{
	query.FieldName,
	query.FieldType,
	query.FieldSize,
	query.FieldModified,
	query.FieldPermissions,
}

// TableFormatter renders entries as a human-readable table with names
// colored per theme
type TableFormatter struct {
	writer io.Writer
	theme  *theme.Theme
}

// NewTableFormatter creates a table formatter. A nil theme renders
// without color.
func NewTableFormatter(w io.Writer, th *theme.Theme) *TableFormatter {
	if th == nil {
		th = theme.Default()
		th.NoColor = true
	}
	return &TableFormatter{writer: w, theme: th}
}

// SetOutput sets the output writer
func (t *TableFormatter) SetOutput(w io.Writer) {
	t.writer = w
}

// SetTheme replaces the color theme
func (t *TableFormatter) SetTheme(th *theme.Theme) {
	t.theme = th
}

// Format renders the projected columns, Name first when present.
// Sizes are human-readable, timestamps shortened.
func (t *TableFormatter) Format(entries []fsys.Entry, fields []query.Field) error {
	if fields == nil {
		fields = defaultTableFields
	}

	table := tablewriter.NewWriter(t.writer)
	header := make([]string, len(fields))
	for i, f := range fields {
		header[i] = t.theme.RenderHeader(headerName(f))
	}
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)

	for i := range entries {
		e := &entries[i]
		row := make([]string, len(fields))
		for j, f := range fields {
			cell := fieldText(e, f)
			if f == query.FieldName || f == query.FieldPath {
				cell = t.theme.Render(cell, e.Type == fsys.TypeDir, e.Hidden)
			}
			row[j] = cell
		}
		table.Append(row)
	}

	table.Render()
	return nil
}
