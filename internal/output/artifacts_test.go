package output

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteArtifacts(t *testing.T) {
	dir := t.TempDir()
	ts := time.Date(2026, 8, 30, 14, 5, 9, 0, time.UTC)

	a, err := WriteArtifacts(dir, ts, "the prompt", "the result")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "prompt_20260830_140509.txt"), a.PromptPath)
	assert.Equal(t, filepath.Join(dir, "result_20260830_140509.txt"), a.ResultPath)

	prompt, err := os.ReadFile(a.PromptPath)
	require.NoError(t, err)
	assert.Equal(t, "the prompt", string(prompt))

	result, err := os.ReadFile(a.ResultPath)
	require.NoError(t, err)
	assert.Equal(t, "the result", string(result))
}

func TestWriteArtifactsCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "nested")
	_, err := WriteArtifacts(dir, time.Now(), "p", "r")
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
