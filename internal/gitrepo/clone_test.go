package gitrepo

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
}

func runGitT(t *testing.T, dir string, args ...string) {
	t.Helper()
	full := append([]string{"-c", "user.name=refract-test", "-c", "user.email=test@example.com"}, args...)
	cmd := exec.Command("git", full...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v: %s", args, out)
}

// newOrigin builds a throwaway repository with a base branch and a feature
// branch that adds one line, returning its file:// URL.
func newOrigin(t *testing.T, baseBranch string) string {
	t.Helper()
	dir := t.TempDir()
	runGitT(t, dir, "init", "-b", baseBranch)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.py"), []byte("print('hello')\n"), 0o644))
	runGitT(t, dir, "add", ".")
	runGitT(t, dir, "commit", "-m", "initial")
	runGitT(t, dir, "checkout", "-b", "feature-x")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.py"), []byte("print('hello')\nprint('world')\n"), 0o644))
	runGitT(t, dir, "add", ".")
	runGitT(t, dir, "commit", "-m", "add world")
	runGitT(t, dir, "checkout", baseBranch)
	return "file://" + dir
}

func silenceLogs(t *testing.T) *[]string {
	t.Helper()
	var logs []string
	orig := Logf
	Logf = func(format string, args ...any) {
		logs = append(logs, format)
	}
	t.Cleanup(func() { Logf = orig })
	return &logs
}

func TestCloneBranchAndDiff(t *testing.T) {
	requireGit(t)
	silenceLogs(t)

	url := newOrigin(t, "main")
	ctx := context.Background()

	path, cleanup, err := CloneBranch(ctx, RepoRef{URL: url, Branch: "feature-x"})
	require.NoError(t, err)
	defer cleanup()

	// The checkout contains the feature branch's version.
	data, err := os.ReadFile(filepath.Join(path, "app.py"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "world")

	diff, base, err := DiffAgainstBase(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "main", base)
	assert.Contains(t, diff, "diff --git a/app.py b/app.py")
	assert.Contains(t, diff, "+print('world')")

	chunks := SplitDiff(diff)
	require.Len(t, chunks, 1)

	cleanup()
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "cleanup should remove the checkout")
}

func TestDiffFallsBackToMaster(t *testing.T) {
	requireGit(t)
	logs := silenceLogs(t)

	url := newOrigin(t, "master")
	ctx := context.Background()

	path, cleanup, err := CloneBranch(ctx, RepoRef{URL: url, Branch: "feature-x"})
	require.NoError(t, err)
	defer cleanup()

	diff, base, err := DiffAgainstBase(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "master", base)
	assert.NotEmpty(t, diff)

	// main must have been attempted (and logged) first.
	joined := strings.Join(*logs, "\n")
	assert.Contains(t, joined, "failed")
}

func TestCloneBranchBadRemote(t *testing.T) {
	requireGit(t)
	silenceLogs(t)

	_, _, err := CloneBranch(context.Background(), RepoRef{
		URL:    "file:///nonexistent/refract-test-repo",
		Branch: "main",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to prepare repository")
}
