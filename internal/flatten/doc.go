// Package flatten serializes a working tree into one linear, deterministic
// text document for embedding in a review prompt.
//
// Every regular file outside the excluded-directory set appears in the
// document in lexicographic path order. Recognized textual files (source
// code, structured config, documentation) are rendered as fenced blocks
// with right-aligned line numbers; binary, non-UTF-8, and unrecognized
// files are listed by path with an explicit omission marker so the
// document stays bounded. Decoding failures never abort the walk.
package flatten
