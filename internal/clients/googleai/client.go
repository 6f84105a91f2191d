package googleai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"leads-server/internal/observability"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

var ErrEmptyResponse = errors.New("no text returned from Gemini")

// TextClient generates single-turn text completions with a Gemini model
type TextClient struct {
	client *genai.Client
	model  string
	logger *observability.Logger
}

func NewTextClient(ctx context.Context, apiKey, model string, logger *observability.Logger) (*TextClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &TextClient{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

func (g *TextClient) Model() string {
	return g.model
}

func (g *TextClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	model := g.client.GenerativeModel(g.model)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	if resp.UsageMetadata != nil {
		g.logger.Metrics(ctx,
			observability.MetricField{Key: "prompt_tokens", Value: resp.UsageMetadata.PromptTokenCount},
			observability.MetricField{Key: "candidate_tokens", Value: resp.UsageMetadata.CandidatesTokenCount},
		)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyResponse
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", ErrEmptyResponse
	}
	return strings.TrimSpace(sb.String()), nil
}

func (g *TextClient) Close() error {
	return g.client.Close()
}
