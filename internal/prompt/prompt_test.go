package prompt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "default_prompt.txt")
	require.NoError(t, os.WriteFile(path, []byte("Classify this:\n{document_text}"), 0o600))

	got, err := LoadDefault(path)
	require.NoError(t, err)
	assert.Equal(t, "Classify this:\n{document_text}", got)
}

func TestLoadDefaultMissingFile(t *testing.T) {
	_, err := LoadDefault(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
}

func TestRender(t *testing.T) {
	got := Render("Summarize:\n{document_text}\nEnd.", "hello world")
	assert.Equal(t, "Summarize:\nhello world\nEnd.", got)
}

func TestRenderMultipleOccurrences(t *testing.T) {
	got := Render("{document_text} and {document_text}", "x")
	assert.Equal(t, "x and x", got)
}

func TestRenderWithoutPlaceholder(t *testing.T) {
	got := Render("no placeholder here", "ignored")
	assert.Equal(t, "no placeholder here", got)
}
