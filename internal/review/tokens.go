package review

import (
	"fmt"
	"os"
)

// charsPerToken is the fixed characters-per-token approximation used for
// all budget estimates.
const charsPerToken = 4

// Logf receives budget warnings from this package. The CLI points it at
// stderr; tests may capture or silence it.
var Logf = func(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

// EstimateTokens approximates the token count of s.
func EstimateTokens(s string) int {
	return len(s) / charsPerToken
}

// PartitionCalls decides how to submit the prompt given a context-window
// budget in tokens. When the prompt fits, it is submitted whole. When it
// does not, the oversize is only warned about and the whole prompt is
// still submitted unmodified: chunked submission is unimplemented.
//
// TODO: split the diff chunks across multiple calls when the prompt
// exceeds the budget, instead of submitting it whole.
func PartitionCalls(prompt string, diffs []string, maxContextTokens int) []string {
	if EstimateTokens(prompt) < maxContextTokens {
		return []string{prompt}
	}

	diffBytes := 0
	for _, d := range diffs {
		diffBytes += len(d)
	}
	Logf("prompt exceeds context window (%d tokens > %d budget); diffs alone are ~%d tokens; submitting whole prompt anyway",
		EstimateTokens(prompt), maxContextTokens, diffBytes/charsPerToken)

	return []string{prompt}
}
