package gitrepo

import (
	"context"
	"fmt"
	"strings"
)

// diffHeader marks the start of one file's section in unified diff output.
const diffHeader = "diff --git"

// DiffAgainstBase computes the unified diff between the checkout at dir and
// the first base candidate that resolves, trying each in order. It returns
// the raw diff and the base branch used. Every failed candidate is logged;
// only exhausting all of them is an error.
func DiffAgainstBase(ctx context.Context, dir string) (diff, base string, err error) {
	for _, candidate := range BaseCandidates {
		out, derr := gitOutput(ctx, dir, "diff", "origin/"+candidate, "HEAD", "--minimal")
		if derr == nil {
			return out, candidate, nil
		}
		Logf("diff against base %q failed: %v", candidate, derr)
		err = derr
	}
	return "", "", fmt.Errorf("failed to diff against base branch %s: %w", quoteList(BaseCandidates), err)
}

// SplitDiff partitions raw diff text into one chunk per changed file by
// scanning for "diff --git" header lines. Text before the first header is
// dropped; the chunk after the last header is preserved. Chunks are opaque
// strings with no hunk-level structure.
func SplitDiff(diff string) []string {
	var chunks []string
	var current []string
	seen := false

	for _, line := range strings.Split(diff, "\n") {
		if strings.HasPrefix(line, diffHeader) {
			if seen {
				chunks = append(chunks, strings.Join(current, "\n"))
			}
			current = current[:0]
			seen = true
		}
		if seen {
			current = append(current, line)
		}
	}
	// A trailing newline in the diff leaves one empty element behind.
	if n := len(current); n > 0 && current[n-1] == "" {
		current = current[:n-1]
	}
	if seen && len(current) > 0 {
		chunks = append(chunks, strings.Join(current, "\n"))
	}
	return chunks
}
