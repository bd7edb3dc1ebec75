package generator

import (
	"context"
	"fmt"
	"os"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const (
	// DefaultOpenAIModel is used when no model is configured
	DefaultOpenAIModel = "gpt-4o-mini"

	// EnvOpenAIAPIKey names the environment variable holding the key
	EnvOpenAIAPIKey = "OPENAI_API_KEY"
)

// OpenAIProvider implements Capability on the official OpenAI SDK's chat
// completions API.
type OpenAIProvider struct {
	client openai.Client
	model  string
}

// NewOpenAIProvider creates an OpenAI-backed capability. An empty apiKey
// falls back to OPENAI_API_KEY; an empty model uses the default.
func NewOpenAIProvider(apiKey, model string) (*OpenAIProvider, error) {
	if apiKey == "" {
		apiKey = os.Getenv(EnvOpenAIAPIKey)
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%w: %s not set", ErrNoAPIKey, EnvOpenAIAPIKey)
	}
	if model == "" {
		model = DefaultOpenAIModel
	}

	return &OpenAIProvider{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}, nil
}

func (o *OpenAIProvider) Name() string { return ProviderOpenAI }

// Complete sends prompt to the chat completions API. The SDK handles its
// own retry policy.
func (o *OpenAIProvider) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyContent
	}

	text := resp.Choices[0].Message.Content
	if text == "" {
		return "", ErrEmptyContent
	}
	return text, nil
}
