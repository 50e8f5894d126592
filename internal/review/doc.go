// Package review assembles and submits the pull-request review prompt.
//
// [ComposePrompt] is pure: it merges user instructions, coding rules, the
// flattened codebase, and per-file diff chunks into one templated document
// with a fixed output-schema contract, in fixed order. [LoadRules]
// concatenates the markdown rules documents, treating a missing directory
// as valid emptiness. [PartitionCalls] estimates prompt size at a fixed
// characters-per-token ratio and, when over budget, warns and submits the
// whole prompt anyway. [Run] ties these together around a single provider
// call and strips markdown fences from the response.
package review
