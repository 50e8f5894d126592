package gitrepo

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// BaseCandidates are the conventional base-branch names, tried in order.
var BaseCandidates = []string{"main", "master"}

// Logf receives progress and fallback messages from this package. The CLI
// points it at stderr; tests may capture or silence it.
var Logf = func(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

// CloneBranch shallow-clones exactly one branch of ref into a fresh
// temporary directory and fetches a base branch for later diffing. It
// returns the checkout path and a cleanup function that always removes the
// directory; cleanup is safe to call multiple times. On error the
// directory is already removed.
func CloneBranch(ctx context.Context, ref RepoRef) (string, func(), error) {
	dir, err := os.MkdirTemp("", "refract-*")
	if err != nil {
		return "", nil, fmt.Errorf("creating temp dir: %w", err)
	}
	cleanup := func() { os.RemoveAll(dir) }

	if err := runGit(ctx, "", "clone", "--branch", ref.Branch, "--depth", "1", ref.URL, dir); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("failed to prepare repository '%s': %w", ref, err)
	}

	if err := fetchBase(ctx, dir); err != nil {
		cleanup()
		return "", nil, err
	}

	return dir, cleanup, nil
}

// fetchBase fetches the first reachable base candidate into the clone. The
// explicit refspec materializes the remote-tracking ref, which a shallow
// single-branch clone does not carry on its own.
func fetchBase(ctx context.Context, dir string) error {
	for _, base := range BaseCandidates {
		refspec := fmt.Sprintf("+refs/heads/%s:refs/remotes/origin/%s", base, base)
		err := runGit(ctx, dir, "fetch", "--depth", "1", "origin", refspec)
		if err == nil {
			return nil
		}
		Logf("fetch of base branch %q failed: %v", base, err)
	}
	return fmt.Errorf("could not fetch base branch %s", quoteList(BaseCandidates))
}

func quoteList(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = fmt.Sprintf("%q", n)
	}
	return strings.Join(quoted, " or ")
}

// runGit executes git with the given arguments, discarding stdout. Stderr
// is folded into the returned error.
func runGit(ctx context.Context, dir string, args ...string) error {
	cmd := exec.CommandContext(ctx, "git", args...)
	if dir != "" {
		cmd.Dir = dir
	}
	out, err := cmd.CombinedOutput()
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if msg != "" {
			return fmt.Errorf("git %s: %w: %s", args[0], err, msg)
		}
		return fmt.Errorf("git %s: %w", args[0], err)
	}
	return nil
}

// gitOutput executes git and returns its stdout.
func gitOutput(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	if dir != "" {
		cmd.Dir = dir
	}
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return string(out), fmt.Errorf("git %s: %w: %s", args[0], err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("git %s: %w", args[0], err)
	}
	return string(out), nil
}
