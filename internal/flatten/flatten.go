package flatten

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"
)

// Omission markers substituted for file contents that are not embedded.
const (
	BinaryMarker  = "_Binary or non-UTF8 file contents omitted_"
	NonCodeMarker = "_Non-code file contents omitted_"
)

// textExtensions marks files whose contents are embedded in the snapshot:
// source code, structured config, and documentation.
var textExtensions = map[string]bool{
	".go":   true,
	".py":   true,
	".js":   true,
	".ts":   true,
	".rb":   true,
	".rs":   true,
	".java": true,
	".c":    true,
	".h":    true,
	".sh":   true,
	".sql":  true,
	".yaml": true,
	".yml":  true,
	".toml": true,
	".json": true,
	".md":   true,
}

// textFilenames marks extensionless files treated as textual.
var textFilenames = map[string]bool{
	"Dockerfile": true,
	"Makefile":   true,
	"go.mod":     true,
	"go.sum":     true,
}

// excludedDirs are noise directories skipped entirely during the walk:
// version-control metadata, virtual environments, and dependency caches.
var excludedDirs = map[string]bool{
	".git":          true,
	".hg":           true,
	"__pycache__":   true,
	".venv":         true,
	"venv":          true,
	"node_modules":  true,
	"vendor":        true,
	".mypy_cache":   true,
	".pytest_cache": true,
}

// File is one entry of the flattened codebase.
type File struct {
	// RelativePath is slash-separated, relative to the walk root.
	RelativePath string
	// Body is either a rendered fenced block or an omission marker.
	Body string
}

// Codebase walks the tree rooted at root and renders every regular file,
// in lexicographic path order, as one linear document. Recognized textual
// files are embedded as fenced blocks with 4-digit right-aligned line
// numbers; everything else is listed by path with an omission marker. The
// output is byte-identical across runs on identical input.
func Codebase(root string) (string, error) {
	files, err := Walk(root)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, f := range files {
		b.WriteString("## ")
		b.WriteString(f.RelativePath)
		b.WriteString("\n")
		b.WriteString(f.Body)
		b.WriteString("\n\n")
	}
	return strings.TrimSuffix(b.String(), "\n"), nil
}

// Walk returns the flattened entries in path-sorted order.
func Walk(root string) ([]File, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && excludedDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	sort.Strings(paths)

	files := make([]File, 0, len(paths))
	for _, rel := range paths {
		files = append(files, File{
			RelativePath: rel,
			Body:         renderFile(root, rel),
		})
	}
	return files, nil
}

func renderFile(root, rel string) string {
	if !isTextual(rel) {
		return NonCodeMarker
	}
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil || !utf8.Valid(data) {
		return BinaryMarker
	}
	return RenderNumbered(string(data))
}

// RenderNumbered wraps content in a fenced block with a 4-digit
// right-aligned line number prefix per line.
func RenderNumbered(content string) string {
	trimmed := strings.TrimRight(content, "\n\r \t")
	var lines []string
	if trimmed != "" {
		lines = strings.Split(trimmed, "\n")
	}

	var b strings.Builder
	b.WriteString("```\n")
	for i, line := range lines {
		// CRLF input leaves a carriage return on every split line.
		fmt.Fprintf(&b, "%4d | %s\n", i+1, strings.TrimSuffix(line, "\r"))
	}
	b.WriteString("```")
	return b.String()
}

func isTextual(rel string) bool {
	if textFilenames[filepath.Base(rel)] {
		return true
	}
	return textExtensions[strings.ToLower(filepath.Ext(rel))]
}
