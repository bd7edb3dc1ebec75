package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const (
	anthropicEndpoint = "https://api.anthropic.com/v1/messages"
	anthropicVersion  = "2023-06-01"

	// DefaultAnthropicModel is used when no model is configured
	DefaultAnthropicModel = "claude-3-5-sonnet-20241022"

	// EnvAnthropicAPIKey names the environment variable holding the key
	EnvAnthropicAPIKey = "ANTHROPIC_API_KEY"
)

// AnthropicProvider implements Capability against the Anthropic messages
// API with plain JSON over HTTP.
type AnthropicProvider struct {
	apiKey     string
	model      string
	httpClient *http.Client
	retry      RetryConfig
}

// NewAnthropicProvider creates an Anthropic-backed capability. An empty
// apiKey falls back to ANTHROPIC_API_KEY; an empty model uses the default.
func NewAnthropicProvider(apiKey, model string) (*AnthropicProvider, error) {
	if apiKey == "" {
		apiKey = os.Getenv(EnvAnthropicAPIKey)
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%w: %s not set", ErrNoAPIKey, EnvAnthropicAPIKey)
	}
	if model == "" {
		model = DefaultAnthropicModel
	}

	return &AnthropicProvider{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		retry: DefaultRetryConfig(),
	}, nil
}

func (a *AnthropicProvider) Name() string { return ProviderAnthropic }

// Complete sends prompt to the messages API with retry
func (a *AnthropicProvider) Complete(ctx context.Context, prompt string) (string, error) {
	text, err := retryWithBackoff(ctx, a.retry, func() (string, error) {
		return a.callAPI(ctx, prompt)
	})
	if err != nil {
		return "", fmt.Errorf("anthropic: %w", err)
	}
	return text, nil
}

func (a *AnthropicProvider) callAPI(ctx context.Context, prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"model":      a.model,
		"max_tokens": 1024,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, anthropicEndpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", a.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("api call: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("api error %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var apiResp struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	for _, c := range apiResp.Content {
		if c.Type == "text" && c.Text != "" {
			return c.Text, nil
		}
	}
	return "", ErrEmptyContent
}
