package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type CreateComposeResponseParams struct {
	UserID  *uuid.UUID
	Channel string
	Prompt  string
	AIText  string
	Model   string
}

const sqlCreateComposeResponse = `
INSERT INTO compose_responses (user_id, channel, prompt, ai_text, model)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, user_id, channel, prompt, ai_text, model, created_at
`

func (s *Store) CreateComposeResponse(ctx context.Context, params CreateComposeResponseParams) (ComposeResponse, error) {
	var resp ComposeResponse
	err := s.db.GetContext(ctx, &resp, sqlCreateComposeResponse,
		params.UserID,
		params.Channel,
		params.Prompt,
		params.AIText,
		params.Model)
	if err != nil {
		s.logger.Error(ctx, "failed to create compose response", err)
		return ComposeResponse{}, fmt.Errorf("failed to create compose response: %w", err)
	}
	return resp, nil
}
