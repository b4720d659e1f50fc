// Package output renders query results and deletion reports.
//
// Supported formats:
//   - table: human-readable, colored per theme
//   - JSON Lines: one JSON object per line
//   - CSV: comma-separated values with a header row
//
// Example usage:
//
//	formatter := output.NewJSONFormatter(os.Stdout)
//	if err := formatter.Format(entries, nil); err != nil {
//	    log.Fatal(err)
//	}
package output

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/vegasq/fsql/internal/fsys"
	"github.com/vegasq/fsql/internal/query"
)

// Formatter renders entries under a field projection. A nil field list
// means "all fields" for machine formats and the default column set for
// the table.
type Formatter interface {
	Format(entries []fsys.Entry, fields []query.Field) error
	SetOutput(w io.Writer)
}

// New returns the formatter registered under name
func New(name string, w io.Writer) (Formatter, error) {
	switch name {
	case "table", "":
		return NewTableFormatter(w, nil), nil
	case "json":
		return NewJSONFormatter(w), nil
	case "csv":
		return NewCSVFormatter(w), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", name)
	}
}

// fieldValue extracts one attribute in machine form: raw byte sizes,
// RFC3339 timestamps
func fieldValue(e *fsys.Entry, f query.Field) any {
	switch f {
	case query.FieldName:
		return e.Name
	case query.FieldPath:
		return e.Path
	case query.FieldSize:
		return e.Size
	case query.FieldModified:
		return e.Modified.Format(time.RFC3339)
	case query.FieldCreated:
		return e.Created.Format(time.RFC3339)
	case query.FieldExt:
		return e.Ext
	case query.FieldPermissions:
		return e.Permissions
	case query.FieldOwner:
		return e.Owner
	case query.FieldIsHidden:
		return e.Hidden
	case query.FieldIsReadonly:
		return e.ReadOnly
	case query.FieldType:
		return string(e.Type)
	default:
		return nil
	}
}

// fieldText renders one attribute for human-readable output
func fieldText(e *fsys.Entry, f query.Field) string {
	switch f {
	case query.FieldSize:
		return HumanSize(e.Size)
	case query.FieldModified:
		return e.Modified.Format("2006-01-02 15:04")
	case query.FieldCreated:
		return e.Created.Format("2006-01-02 15:04")
	case query.FieldIsHidden:
		return strconv.FormatBool(e.Hidden)
	case query.FieldIsReadonly:
		return strconv.FormatBool(e.ReadOnly)
	default:
		return fmt.Sprintf("%v", fieldValue(e, f))
	}
}

// headerName returns the column title for a field
func headerName(f query.Field) string {
	switch f {
	case query.FieldName:
		return "Name"
	case query.FieldPath:
		return "Path"
	case query.FieldSize:
		return "Size"
	case query.FieldModified:
		return "Modified"
	case query.FieldCreated:
		return "Created"
	case query.FieldExt:
		return "Ext"
	case query.FieldPermissions:
		return "Permissions"
	case query.FieldOwner:
		return "Owner"
	case query.FieldIsHidden:
		return "Hidden"
	case query.FieldIsReadonly:
		return "ReadOnly"
	case query.FieldType:
		return "Type"
	default:
		return "?"
	}
}

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// HumanSize renders a byte count with 1024-based units
func HumanSize(size int64) string {
	val := float64(size)
	unit := 0
	for val >= 1024 && unit < len(sizeUnits)-1 {
		val /= 1024
		unit++
	}
	if unit == 0 {
		return strconv.FormatInt(size, 10) + " B"
	}
	return strconv.FormatFloat(val, 'f', 1, 64) + " " + sizeUnits[unit]
}
