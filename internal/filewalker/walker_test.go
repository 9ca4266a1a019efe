package filewalker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("// source\n"), 0644))
}

func TestWalkDiscoversHandledFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "AppDelegate.m"))
	writeFile(t, filepath.Join(dir, "AppDelegate.h"))
	writeFile(t, filepath.Join(dir, "sub", "View.M"))
	writeFile(t, filepath.Join(dir, "README.txt"))
	writeFile(t, filepath.Join(dir, "Podfile"))

	entries, err := NewWalker().Walk(dir)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	for _, e := range entries {
		assert.NotNil(t, e.Type)
		ext := filepath.Ext(e.Path)
		assert.Contains(t, []string{".m", ".h", ".M"}, ext)
	}
}

func TestWalkRejectsNonDirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "single.m")
	writeFile(t, file)

	_, err := NewWalker().Walk(file)
	assert.Error(t, err)
}

func TestWalkMissingRoot(t *testing.T) {
	_, err := NewWalker().Walk(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
