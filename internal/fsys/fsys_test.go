package fsys

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string, size int) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o644))
}

func TestSnapshot_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.txt")
	writeFile(t, path, 128)

	e, err := Snapshot(path)
	require.NoError(t, err)

	assert.Equal(t, "report.txt", e.Name)
	assert.Equal(t, path, e.Path)
	assert.Equal(t, int64(128), e.Size)
	assert.Equal(t, "txt", e.Ext)
	assert.Equal(t, TypeFile, e.Type)
	assert.False(t, e.Hidden)
	assert.False(t, e.ReadOnly)
	assert.False(t, e.Modified.IsZero())
	assert.False(t, e.Created.IsZero())
}

func TestSnapshot_HiddenAndNoExt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".gitignore")
	writeFile(t, path, 1)

	e, err := Snapshot(path)
	require.NoError(t, err)

	assert.True(t, e.Hidden)
	assert.Equal(t, "gitignore", e.Ext)

	noExt := filepath.Join(dir, "Makefile")
	writeFile(t, noExt, 1)
	e, err = Snapshot(noExt)
	require.NoError(t, err)
	assert.Equal(t, "", e.Ext)
}

func TestSnapshot_Dir(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "photos")
	require.NoError(t, os.Mkdir(sub, 0o755))

	e, err := Snapshot(sub)
	require.NoError(t, err)
	assert.Equal(t, TypeDir, e.Type)
	assert.Equal(t, "755", e.Permissions)
}

func TestSnapshot_Symlink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target.txt")
	writeFile(t, target, 1)
	link := filepath.Join(dir, "link.txt")
	require.NoError(t, os.Symlink(target, link))

	e, err := Snapshot(link)
	require.NoError(t, err)
	assert.Equal(t, TypeSymlink, e.Type)
}

func TestSnapshot_ReadOnly(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "frozen.txt")
	writeFile(t, path, 1)
	require.NoError(t, os.Chmod(path, 0o444))

	e, err := Snapshot(path)
	require.NoError(t, err)
	assert.True(t, e.ReadOnly)
	assert.Equal(t, "444", e.Permissions)
}

func TestSnapshot_Owner(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mine.txt")
	writeFile(t, path, 1)

	e, err := Snapshot(path)
	require.NoError(t, err)
	assert.NotEmpty(t, e.Owner)
}

func TestWalk_Shallow(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), 1)
	writeFile(t, filepath.Join(dir, "b.txt"), 1)
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))
	writeFile(t, filepath.Join(sub, "nested.txt"), 1)

	entries, err := Walk(dir, false)
	require.NoError(t, err)

	names := entryNames(entries)
	assert.ElementsMatch(t, []string{"a.txt", "b.txt", "sub"}, names)
}

func TestWalk_Recursive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), 1)
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))
	writeFile(t, filepath.Join(sub, "nested.txt"), 1)

	entries, err := Walk(dir, true)
	require.NoError(t, err)

	names := entryNames(entries)
	assert.ElementsMatch(t, []string{"a.txt", "sub", "nested.txt"}, names)
}

func TestWalk_SkipsRootItself(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "only.txt"), 1)

	for _, recursive := range []bool{false, true} {
		entries, err := Walk(dir, recursive)
		require.NoError(t, err)
		for _, e := range entries {
			assert.NotEqual(t, dir, e.Path)
		}
	}
}

func TestWalk_MissingRoot(t *testing.T) {
	_, err := Walk(filepath.Join(t.TempDir(), "nope"), false)
	assert.ErrorIs(t, err, ErrPathNotFound)
}

func TestWalk_UnreadableRoot(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("running as root, permission bits are not enforced")
	}

	dir := t.TempDir()
	sealed := filepath.Join(dir, "sealed")
	require.NoError(t, os.Mkdir(sealed, 0o755))
	writeFile(t, filepath.Join(sealed, "hidden.txt"), 1)
	require.NoError(t, os.Chmod(sealed, 0o000))
	t.Cleanup(func() { _ = os.Chmod(sealed, 0o755) })

	for _, recursive := range []bool{false, true} {
		_, err := Walk(sealed, recursive)
		assert.ErrorIs(t, err, ErrPathNotReadable, "recursive=%v", recursive)
	}
}

func TestWalk_FileRoot(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "single.txt")
	writeFile(t, path, 1)

	entries, err := Walk(path, false)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "single.txt", entries[0].Name)
}

func entryNames(entries []Entry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}
