package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"leads-server/internal/observability"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

var ErrEmptyResponse = errors.New("no choices returned from OpenAI")

type ChatClient struct {
	client openai.Client
	model  string
	logger *observability.Logger
}

func NewChatClient(apiKey, model string, logger *observability.Logger, opts ...option.RequestOption) (*ChatClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	options := append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	return &ChatClient{
		client: openai.NewClient(options...),
		model:  model,
		logger: logger,
	}, nil
}

func (c *ChatClient) Model() string {
	return c.model
}

func (c *ChatClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}

	c.logger.Metrics(ctx,
		observability.MetricField{Key: "prompt_tokens", Value: completion.Usage.PromptTokens},
		observability.MetricField{Key: "completion_tokens", Value: completion.Usage.CompletionTokens},
	)

	if len(completion.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}
