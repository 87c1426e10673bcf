package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elevont/prttl/format"
)

const unformattedDoc = `@prefix ex: <http://example.com/> .
ex:b ex:p "2" .
ex:a ex:p "1" .
`

const formattedDoc = `@prefix ex: <http://example.com/> .

ex:a ex:p "1" .
ex:b ex:p "2" .
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestCollectFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.ttl"), unformattedDoc)
	writeFile(t, filepath.Join(dir, "sub", "b.ttl"), unformattedDoc)
	writeFile(t, filepath.Join(dir, "notes.txt"), "not turtle")

	files, err := collectFiles(dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "a.ttl"),
		filepath.Join(dir, "sub", "b.ttl"),
	}, files)

	single, err := collectFiles(filepath.Join(dir, "notes.txt"))
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "notes.txt")}, single)

	_, err = collectFiles(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestFormatFileRewritesInPlace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.ttl")
	writeFile(t, path, unformattedDoc)

	changed, err := formatFile(path, format.DefaultOptions())
	require.NoError(t, err)
	assert.True(t, changed)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, formattedDoc, string(data))

	changed, err = formatFile(path, format.DefaultOptions())
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestFormatFileCheckLeavesFileAlone(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.ttl")
	writeFile(t, path, unformattedDoc)

	opts := format.DefaultOptions()
	opts.Check = true
	changed, err := formatFile(path, opts)
	require.NoError(t, err)
	assert.True(t, changed)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, unformattedDoc, string(data))
}

func TestUnifiedDiff(t *testing.T) {
	diff, err := unifiedDiff("doc.ttl", unformattedDoc, formattedDoc)
	require.NoError(t, err)
	assert.Contains(t, diff, "--- doc.ttl")
	assert.Contains(t, diff, "+++ doc.ttl (formatted)")
	assert.Contains(t, diff, `-ex:b ex:p "2" .`)
	assert.Contains(t, diff, `+ex:a ex:p "1" .`)
}

func TestFormatStream(t *testing.T) {
	var out strings.Builder
	err := formatStream(strings.NewReader(unformattedDoc), &out, format.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, formattedDoc, out.String())
}
