package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"locstrings/internal/resource"
)

func sampleResources() []resource.String {
	proj := resource.Project{ID: "app", SourceLocale: "en-US"}

	a := proj.NewString("Hello", "Hello")
	a.Path = "a.m"
	a.Datatype = "x-objective-c"
	a.Comment = "greeting"

	b := proj.NewString("Tab\there", "Tab\there")
	b.Path = "b.m"
	b.Datatype = "x-objective-c"
	b.Index = 1

	return []resource.String{a, b}
}

func TestWriteTSV(t *testing.T) {
	out := filepath.Join(t.TempDir(), "resources.tsv")
	require.NoError(t, WriteTSV(out, sampleResources()))

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "project\tlocale\tkey"))
	assert.Contains(t, lines[1], "Hello")
	assert.Contains(t, lines[1], "greeting")

	// Embedded tabs are escaped so the row stays aligned.
	assert.Contains(t, lines[2], `Tab\there`)
}

// A literal backslash-t in the source must stay distinguishable from an
// escaped real tab on round-trip.
func TestWriteTSVEscapesBackslashes(t *testing.T) {
	proj := resource.Project{ID: "app", SourceLocale: "en-US"}

	realTab := proj.NewString("a\tb", "a\tb")
	literalSeq := proj.NewString(`a\tb`, `a\tb`)
	literalSeq.Index = 1

	out := filepath.Join(t.TempDir(), "resources.tsv")
	require.NoError(t, WriteTSV(out, []resource.String{realTab, literalSeq}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], `a\tb`)
	assert.NotContains(t, lines[1], `\\`)
	assert.Contains(t, lines[2], `a\\tb`)
}

func TestWriteJSON(t *testing.T) {
	out := filepath.Join(t.TempDir(), "resources.json")
	require.NoError(t, WriteJSON(out, sampleResources()))

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var decoded []resource.String
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "Hello", decoded[0].Key)
	assert.Equal(t, "en-US", decoded[0].SourceLocale)
	assert.Equal(t, resource.StateNew, decoded[1].State)
}

func TestWriteTSVBadPath(t *testing.T) {
	err := WriteTSV(filepath.Join(t.TempDir(), "missing", "out.tsv"), nil)
	assert.Error(t, err)
}
