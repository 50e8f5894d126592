package gitrepo

import (
	"fmt"
	"strings"
)

// RepoRef identifies a single branch of a remote repository.
type RepoRef struct {
	URL    string
	Branch string
}

// String renders the reference back in url@branch form.
func (r RepoRef) String() string {
	return r.URL + "@" + r.Branch
}

// ParseRepoRef parses a "repo-url@branch" token. The branch is everything
// after the last "@", so URLs containing "@" (ssh remotes) still parse.
func ParseRepoRef(ref string) (RepoRef, error) {
	idx := strings.LastIndex(ref, "@")
	if idx < 0 {
		return RepoRef{}, fmt.Errorf("repository reference must be in the form 'repo-url@branch', got %q", ref)
	}
	url, branch := ref[:idx], ref[idx+1:]
	if url == "" || branch == "" {
		return RepoRef{}, fmt.Errorf("invalid repository reference %q: expected 'repo-url@branch'", ref)
	}
	return RepoRef{URL: url, Branch: branch}, nil
}
