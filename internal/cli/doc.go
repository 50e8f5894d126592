// Package cli wires refract's cobra commands to the pipeline.
//
// The review command runs the whole single-shot pipeline: parse and
// validate the repo-url@branch reference (before any filesystem or network
// action), clone, flatten, diff, load rules, compose, submit, and persist
// the two artifact files. Handlers set a package-level exit code that
// [Run] returns: 0 success, 2 usage error, 3 auth error, 4 runtime error.
package cli
