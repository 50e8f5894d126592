package providers

import (
	"context"
	"fmt"

	"github.com/dshills/refract/internal/config"
)

// Reviewer sends a composed review prompt to a hosted model and returns
// the raw response text. Implementations issue exactly one request per
// call; failures propagate to the caller unretried.
type Reviewer interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Name() string
}

// New creates the provider selected by the configuration.
func New(cfg config.Config) (Reviewer, error) {
	switch cfg.Provider {
	case "gemini", "google":
		return NewGemini(cfg.GeminiAPIKey, cfg.GeminiModel)
	case "azure", "openai":
		return NewAzure(cfg.AzureEndpoint, cfg.AzureAPIKey, cfg.AzureModel)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, cfg.Provider)
	}
}
