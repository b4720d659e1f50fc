package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	th := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Equal(t, "table", th.Format)
	assert.Equal(t, Default().Directory, th.Directory)
}

func TestLoad_ValidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
colors:
  directory: blue
  hidden: gray
format: json
`), 0o644))

	th := Load(path)
	assert.Equal(t, "json", th.Format)
	assert.NotEqual(t, Default().Directory, th.Directory)
}

func TestLoad_BadColorFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
colors:
  directory: ultraviolet
`), 0o644))

	th := Load(path)
	assert.Equal(t, Default().Directory, th.Directory)
}

func TestLoad_MalformedYAMLFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte("colors: [not: a: map"), 0o644))

	th := Load(path)
	assert.Equal(t, "table", th.Format)
}

func TestLoad_UnknownFormatKeepsDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: parquet"), 0o644))

	th := Load(path)
	assert.Equal(t, "table", th.Format)
}

func TestRender_NoColorPassthrough(t *testing.T) {
	th := Default()
	th.NoColor = true
	assert.Equal(t, "photos", th.Render("photos", true, false))
	assert.Equal(t, "Name", th.RenderHeader("Name"))
}
