// Package gitrepo materializes remote repository branches and extracts
// diffs by shelling out to the git binary.
//
// [CloneBranch] shallow-clones exactly one branch into a temporary
// directory whose lifetime is bound to the returned cleanup function, then
// fetches a conventional base branch (main, falling back to master) for
// comparison. [DiffAgainstBase] produces the unified diff between the
// checkout and that base, and [SplitDiff] partitions it into one opaque
// chunk per changed file.
//
// Non-zero git exit codes are the sole error signal from this boundary;
// stderr from the subprocess is folded into the returned error.
package gitrepo
