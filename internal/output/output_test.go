package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/vegasq/fsql/internal/engine"
	"github.com/vegasq/fsql/internal/fsys"
	"github.com/vegasq/fsql/internal/query"
	"github.com/vegasq/fsql/internal/theme"
)

func sampleEntries() []fsys.Entry {
	mod := time.Date(2024, 6, 15, 14, 30, 0, 0, time.UTC)
	return []fsys.Entry{
		{Name: "photo.png", Path: "/pics/photo.png", Size: 2048, Modified: mod, Created: mod, Ext: "png", Permissions: "644", Type: fsys.TypeFile},
		{Name: "docs", Path: "/pics/docs", Size: 4096, Modified: mod, Created: mod, Permissions: "755", Type: fsys.TypeDir},
	}
}

func TestJSONFormatter_Projection(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(&buf)
	if err := f.Format(sampleEntries(), []query.Field{query.FieldName, query.FieldSize}); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}

	var row map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &row); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if len(row) != 2 {
		t.Errorf("row has %d keys, want 2: %v", len(row), row)
	}
	if row["name"] != "photo.png" {
		t.Errorf("name = %v, want photo.png", row["name"])
	}
	if row["size"] != float64(2048) {
		t.Errorf("size = %v, want raw byte count 2048", row["size"])
	}
}

func TestJSONFormatter_AllFields(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(&buf)
	if err := f.Format(sampleEntries()[:1], nil); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var row map[string]any
	if err := json.Unmarshal(buf.Bytes(), &row); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if len(row) != len(query.AllFields) {
		t.Errorf("row has %d keys, want %d", len(row), len(query.AllFields))
	}
	if row["modified"] != "2024-06-15T14:30:00Z" {
		t.Errorf("modified = %v, want RFC3339", row["modified"])
	}
}

func TestCSVFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewCSVFormatter(&buf)
	if err := f.Format(sampleEntries(), []query.Field{query.FieldName, query.FieldType}); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header plus 2 rows", len(lines))
	}
	if lines[0] != "name,type" {
		t.Errorf("header = %q, want name,type", lines[0])
	}
	if lines[1] != "photo.png,file" {
		t.Errorf("row = %q, want photo.png,file", lines[1])
	}
}

func TestTableFormatter_DefaultColumns(t *testing.T) {
	var buf bytes.Buffer
	f := NewTableFormatter(&buf, nil)
	if err := f.Format(sampleEntries(), nil); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Name", "Type", "Size", "Modified", "Permissions", "photo.png", "2.0 KB"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Owner") {
		t.Errorf("default columns should not include Owner:\n%s", out)
	}
}

func TestTableFormatter_ThemedHeaders(t *testing.T) {
	th := theme.Default()
	th.NoColor = true

	var buf bytes.Buffer
	f := NewTableFormatter(&buf, th)
	if err := f.Format(sampleEntries(), []query.Field{query.FieldName}); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(buf.String(), "Name") {
		t.Errorf("header missing from themed table:\n%s", buf.String())
	}
}

func TestTableFormatter_ExplicitColumns(t *testing.T) {
	var buf bytes.Buffer
	f := NewTableFormatter(&buf, nil)
	if err := f.Format(sampleEntries(), []query.Field{query.FieldName, query.FieldExt}); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Ext") {
		t.Errorf("table output missing Ext column:\n%s", out)
	}
	if strings.Contains(out, "Permissions") {
		t.Errorf("projection leaked extra columns:\n%s", out)
	}
}

func TestHumanSize(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{512, "512 B"},
		{2048, "2.0 KB"},
		{10 * 1024 * 1024, "10.0 MB"},
		{int64(1.5 * 1024 * 1024 * 1024), "1.5 GB"},
	}
	for _, tt := range tests {
		if got := HumanSize(tt.size); got != tt.want {
			t.Errorf("HumanSize(%d) = %q, want %q", tt.size, got, tt.want)
		}
	}
}

func TestWriteReport(t *testing.T) {
	report := &engine.DeletionReport{}
	report.Items = []engine.ItemResult{
		{Entry: fsys.Entry{Path: "/tmp/a"}, Outcome: engine.Removed},
		{Entry: fsys.Entry{Path: "/tmp/b"}, Outcome: engine.Failed, Reason: engine.ReasonNotFound},
	}
	report.Removed = 1
	report.Failed = 1

	var buf bytes.Buffer
	if err := WriteReport(&buf, report); err != nil {
		t.Fatalf("WriteReport() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"removed /tmp/a", "failed /tmp/b (not found)", "1 removed, 0 skipped, 1 failed"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestNew_UnknownFormat(t *testing.T) {
	if _, err := New("parquet", &bytes.Buffer{}); err == nil {
		t.Error("New() expected error for unknown format")
	}
}
