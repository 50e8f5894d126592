package review

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ReviewResult is the JSON shape the model is asked to produce. It is
// expected, not enforced: the pipeline persists the raw response text
// whether or not it decodes.
type ReviewResult struct {
	Approved       bool            `json:"approved"`
	ChangeRequests []ChangeRequest `json:"change_requests"`
	Summary        string          `json:"summary"`
}

// ChangeRequest is one requested change, anchored to a file and line.
type ChangeRequest struct {
	File    string `json:"file"`
	Line    int    `json:"line"`
	Comment string `json:"comment"`
}

// StripFences removes markdown code-fence decoration from a model
// response, if present, so the remainder can be treated as JSON.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	lines := strings.Split(s, "\n")
	if len(lines) < 2 {
		return s
	}
	end := len(lines)
	if strings.TrimSpace(lines[end-1]) == "```" {
		end--
	}
	return strings.TrimSpace(strings.Join(lines[1:end], "\n"))
}

// DecodeResult attempts to decode a (possibly fenced) model response into
// a ReviewResult. Advisory only; callers decide whether failure matters.
func DecodeResult(s string) (ReviewResult, error) {
	var r ReviewResult
	if err := json.Unmarshal([]byte(StripFences(s)), &r); err != nil {
		return ReviewResult{}, fmt.Errorf("decoding review result: %w", err)
	}
	return r, nil
}
