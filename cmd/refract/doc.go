// Refract assembles an LLM-friendly pull request review prompt and submits
// it to a hosted model.
//
// Given a repository reference of the form url@branch, it shallow-clones
// the branch, flattens the source tree into a line-numbered snapshot,
// diffs the branch against its base (main, falling back to master),
// concatenates these with user instructions and static coding rules, and
// sends the result to the configured provider. The composed prompt and the
// raw model response are written as two timestamped text files.
//
// Usage:
//
//	refract review https://example.com/repo.git@feature-x
//	refract review git@github.com:org/repo.git@fix/bug --context "focus on error handling"
//	refract config
//
// Configuration is environment-backed; see refract config for the
// effective values.
package main
