package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"strings"

	"leads-server/internal/observability"
	"leads-server/internal/store"

	"github.com/google/uuid"
)

var (
	ErrChannelRequired = errors.New("channel is required")
	ErrAIRequestFailed = errors.New("AI request failed")
)

// TextGenerator produces a completion for a single prompt
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	Model() string
}

type ComposeStore interface {
	CreateComposeResponse(ctx context.Context, params store.CreateComposeResponseParams) (store.ComposeResponse, error)
}

type ComposeProcessor struct {
	generator TextGenerator
	store     ComposeStore
	logger    *observability.Logger
}

func New(generator TextGenerator, store ComposeStore, logger *observability.Logger) ComposeProcessor {
	return ComposeProcessor{
		generator: generator,
		store:     store,
		logger:    logger,
	}
}

type ComposeRequest struct {
	Channel  string
	Industry string
	Tone     string
	Goal     string
	Language string
	Details  map[string]any
}

// Compose writes a short outreach message for the request's channel. The generated text
// is recorded together with the prompt; a failed write is logged and does not fail the request.
func (p *ComposeProcessor) Compose(ctx context.Context, userID *uuid.UUID, req ComposeRequest) (string, error) {
	req.Channel = strings.TrimSpace(req.Channel)
	if req.Channel == "" {
		return "", ErrChannelRequired
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "channel", Value: req.Channel},
		observability.Field{Key: "model", Value: p.generator.Model()},
	)

	prompt, err := BuildPrompt(req)
	if err != nil {
		return "", err
	}

	text, err := p.generator.GenerateText(ctx, prompt)
	if err != nil {
		p.logger.Error(ctx, "text generation failed", err)
		return "", errors.Join(ErrAIRequestFailed, err)
	}

	_, err = p.store.CreateComposeResponse(ctx, store.CreateComposeResponseParams{
		UserID:  userID,
		Channel: req.Channel,
		Prompt:  prompt,
		AIText:  text,
		Model:   p.generator.Model(),
	})
	if err != nil {
		p.logger.Error(ctx, "failed to record compose response", err)
	}

	return text, nil
}
