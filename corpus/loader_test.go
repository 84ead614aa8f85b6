package corpus

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSourceFile(t *testing.T, name string, lines []string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644)
	require.NoError(t, err)
	return path
}

func TestLoadDocument(t *testing.T) {
	lines := []string{
		"Structural basis of HIV-1 capsid assembly",
		"The mature capsid encloses the viral genome and is built from roughly 1500 copies of the CA protein.",
		"Figure 1. Electron micrograph of assembled capsid cores.",
	}
	path := writeSourceFile(t, "hiv.txt", lines)

	doc, err := LoadDocument("hiv", path)
	require.NoError(t, err)
	assert.Equal(t, "hiv", doc.Source)
	assert.Equal(t, lines, doc.Lines)
}

func TestLoadDocument_PreservesFileOrder(t *testing.T) {
	lines := make([]string, 50)
	for i := range lines {
		lines[i] = "line " + strings.Repeat("x", i)
	}
	path := writeSourceFile(t, "ordered.txt", lines)

	doc, err := LoadDocument("ordered", path)
	require.NoError(t, err)
	require.Len(t, doc.Lines, 50)
	for i, line := range doc.Lines {
		assert.Equal(t, lines[i], line, "line %d out of order", i)
	}
}

func TestLoadDocument_NoCleaning(t *testing.T) {
	// Interior blank lines and surrounding whitespace pass through untouched.
	path := writeSourceFile(t, "raw.txt", []string{"  leading spaces", "", "trailing spaces  "})

	doc, err := LoadDocument("raw", path)
	require.NoError(t, err)
	assert.Equal(t, []string{"  leading spaces", "", "trailing spaces  "}, doc.Lines)
}

func TestLoadDocument_LongParagraphLine(t *testing.T) {
	// A single paragraph can exceed bufio's default 64KiB token size.
	long := strings.Repeat("capsid assembly kinetics ", 8192) // ~200KiB
	path := writeSourceFile(t, "long.txt", []string{"title", long})

	doc, err := LoadDocument("long", path)
	require.NoError(t, err)
	require.Len(t, doc.Lines, 2)
	assert.Equal(t, long, doc.Lines[1])
}

func TestLoadDocument_MissingFile(t *testing.T) {
	_, err := LoadDocument("missing", filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}

func TestLoadAll(t *testing.T) {
	sources := []Source{
		{Label: "a", Path: writeSourceFile(t, "a.txt", []string{"a1", "a2"})},
		{Label: "b", Path: writeSourceFile(t, "b.txt", []string{"b1"})},
	}

	docs, err := LoadAll(sources)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "a", docs[0].Source)
	assert.Equal(t, "b", docs[1].Source)
	assert.Equal(t, []string{"b1"}, docs[1].Lines)
}

func TestLoadAll_FailsOnFirstUnreadableSource(t *testing.T) {
	sources := []Source{
		{Label: "a", Path: writeSourceFile(t, "a.txt", []string{"a1"})},
		{Label: "b", Path: filepath.Join(t.TempDir(), "absent.txt")},
		{Label: "c", Path: writeSourceFile(t, "c.txt", []string{"c1"})},
	}

	docs, err := LoadAll(sources)
	require.Error(t, err)
	assert.Nil(t, docs, "no partial corpus on failure")
}

func TestLoadAll_ValidatesSources(t *testing.T) {
	t.Run("missing label", func(t *testing.T) {
		_, err := LoadAll([]Source{{Path: "/tmp/x.txt"}})
		assert.ErrorIs(t, err, ErrSourceLabelRequired)
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := LoadAll([]Source{{Label: "x"}})
		assert.ErrorIs(t, err, ErrSourcePathRequired)
	})
}
