package review

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dshills/refract/internal/config"
	"github.com/dshills/refract/internal/providers"
	"github.com/dshills/refract/internal/redact"
)

// RunInputs carries the assembled review material into the engine.
type RunInputs struct {
	UserContext       string
	CodingRules       string
	FlattenedCodebase string
	DiffChunks        []string
	BaseBranch        string
}

// RunResult is the immutable outcome of one review run.
type RunResult struct {
	RunID         string
	BaseBranch    string
	Provider      string
	Prompt        string
	Response      string
	TokenEstimate int
}

// Run composes the prompt, checks it against the context-window budget,
// submits it to the reviewer in a single call, and returns the composed
// prompt alongside the fence-stripped response. Any provider failure
// propagates unretried.
func Run(ctx context.Context, cfg config.Config, reviewer providers.Reviewer, in RunInputs) (*RunResult, error) {
	chunks := in.DiffChunks
	if cfg.RedactSecrets {
		chunks = redact.Chunks(chunks)
	}

	prompt := ComposePrompt(PromptInputs{
		UserContext:       in.UserContext,
		CodingRules:       in.CodingRules,
		FlattenedCodebase: in.FlattenedCodebase,
		DiffChunks:        chunks,
	})

	calls := PartitionCalls(prompt, chunks, cfg.MaxContextTokens)

	// Partitioning currently always yields one call.
	raw, err := reviewer.Generate(ctx, calls[0])
	if err != nil {
		return nil, fmt.Errorf("provider %s: %w", reviewer.Name(), err)
	}

	return &RunResult{
		RunID:         newRunID(),
		BaseBranch:    in.BaseBranch,
		Provider:      reviewer.Name(),
		Prompt:        prompt,
		Response:      StripFences(raw),
		TokenEstimate: EstimateTokens(prompt),
	}, nil
}

func newRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
