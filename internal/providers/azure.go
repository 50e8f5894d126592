package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const azureAPIVersion = "2024-02-01"

// Azure implements the Reviewer interface for Azure OpenAI deployments.
type Azure struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// NewAzure creates a new Azure OpenAI provider. endpoint is the resource
// endpoint (https://<resource>.openai.azure.com); model names the
// deployment.
func NewAzure(endpoint, apiKey, model string) (*Azure, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("AZURE_OPENAI_ENDPOINT environment variable is not set")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("AZURE_OPENAI_KEY environment variable is not set")
	}
	return &Azure{
		apiKey:   apiKey,
		model:    model,
		endpoint: strings.TrimRight(endpoint, "/"),
		client:   &http.Client{Timeout: 120 * time.Second},
	}, nil
}

func (a *Azure) Name() string { return "azure" }

func (a *Azure) Generate(ctx context.Context, prompt string) (string, error) {
	url := fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
		a.endpoint, a.model, azureAPIVersion)

	body := azureRequest{
		Messages: []azureMessage{
			{Role: "user", Content: prompt},
		},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("api-key", a.apiKey)

	httpResp, err := a.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("sending request: %w", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode == 401 || httpResp.StatusCode == 403 {
		return "", &authError{message: string(respBody)}
	}
	if httpResp.StatusCode != 200 {
		return "", fmt.Errorf("API error (status %d): %s", httpResp.StatusCode, string(respBody))
	}

	var result azureResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("parsing response: %w", err)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}
	if result.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("empty text content in API response")
	}
	return result.Choices[0].Message.Content, nil
}

type azureRequest struct {
	Messages []azureMessage `json:"messages"`
}

type azureMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type azureResponse struct {
	Choices []azureChoice `json:"choices"`
}

type azureChoice struct {
	Message azureMessage `json:"message"`
}
