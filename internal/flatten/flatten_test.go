package flatten

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel string, data []byte) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func TestRenderNumbered(t *testing.T) {
	got := RenderNumbered("a\nb")
	want := "```\n   1 | a\n   2 | b\n```"
	assert.Equal(t, want, got)
}

func TestRenderNumberedTrailingNewline(t *testing.T) {
	assert.Equal(t, RenderNumbered("a\nb"), RenderNumbered("a\nb\n"))
}

func TestRenderNumberedCRLF(t *testing.T) {
	got := RenderNumbered("a\r\nb\r\n")
	assert.Equal(t, RenderNumbered("a\nb"), got)
	assert.NotContains(t, got, "\r")
}

func TestRenderNumberedWideAlignment(t *testing.T) {
	content := strings.Repeat("x\n", 1000)
	got := RenderNumbered(content)
	assert.Contains(t, got, "   1 | x\n")
	assert.Contains(t, got, "1000 | x\n")
}

func TestCodebaseRendersTextFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "app.py", []byte("a\nb\n"))

	doc, err := Codebase(root)
	require.NoError(t, err)
	assert.Contains(t, doc, "## app.py")
	assert.Contains(t, doc, "   1 | a\n   2 | b")
}

func TestCodebaseOrderingAndDeterminism(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "b.py", []byte("b\n"))
	writeFile(t, root, "a.py", []byte("a\n"))
	writeFile(t, root, "sub/c.py", []byte("c\n"))

	first, err := Codebase(root)
	require.NoError(t, err)
	second, err := Codebase(root)
	require.NoError(t, err)
	assert.Equal(t, first, second, "repeated runs must be byte-identical")

	ia := strings.Index(first, "## a.py")
	ib := strings.Index(first, "## b.py")
	ic := strings.Index(first, "## sub/c.py")
	assert.True(t, ia < ib && ib < ic, "entries must be path-sorted")
}

func TestCodebaseBinaryFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "blob.py", []byte{0xff, 0xfe, 0x00, 0x01})
	writeFile(t, root, "ok.py", []byte("fine\n"))

	doc, err := Codebase(root)
	require.NoError(t, err)
	assert.Contains(t, doc, "## blob.py\n"+BinaryMarker)
	assert.Contains(t, doc, "   1 | fine", "flattening must continue past binary files")
}

func TestCodebaseNonCodeFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "image.png", []byte("not really an image"))

	doc, err := Codebase(root)
	require.NoError(t, err)
	assert.Contains(t, doc, "## image.png\n"+NonCodeMarker)
	assert.NotContains(t, doc, "not really an image")
}

func TestCodebaseExcludedDirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "keep.go", []byte("package keep\n"))
	writeFile(t, root, ".git/config", []byte("noise\n"))
	writeFile(t, root, "node_modules/pkg/index.js", []byte("noise\n"))
	writeFile(t, root, ".venv/lib/thing.py", []byte("noise\n"))

	doc, err := Codebase(root)
	require.NoError(t, err)
	assert.Contains(t, doc, "## keep.go")
	assert.NotContains(t, doc, ".git/config")
	assert.NotContains(t, doc, "node_modules")
	assert.NotContains(t, doc, ".venv")
}

func TestCodebaseSpecialFilenames(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "Makefile", []byte("all:\n\ttrue\n"))
	writeFile(t, root, "Dockerfile", []byte("FROM scratch\n"))

	doc, err := Codebase(root)
	require.NoError(t, err)
	assert.Contains(t, doc, "   1 | all:")
	assert.Contains(t, doc, "   1 | FROM scratch")
}
