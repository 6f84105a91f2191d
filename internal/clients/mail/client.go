package mail

import (
	"context"
	"fmt"

	"leads-server/internal/observability"

	"github.com/resendlabs/resend-go"
)

type ResendClient struct {
	client *resend.Client
	from   string
	logger *observability.Logger
}

// NewResendClient creates a client that sends from the given default sender address
func NewResendClient(apiKey, from string, logger *observability.Logger) (*ResendClient, error) {
	client := resend.NewClient(apiKey)
	if client == nil {
		return nil, fmt.Errorf("failed to create Resend client")
	}

	return &ResendClient{
		client: client,
		from:   from,
		logger: logger,
	}, nil
}

// SendEmail delivers one HTML message to a single recipient and returns the provider message id
func (c *ResendClient) SendEmail(ctx context.Context, to, subject, htmlContent string) (string, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_to", Value: to},
		observability.Field{Key: "email_subject", Value: subject},
	)

	if err := ctx.Err(); err != nil {
		return "", err
	}

	params := &resend.SendEmailRequest{
		From:    c.from,
		To:      []string{to},
		Subject: subject,
		Html:    htmlContent,
	}

	res, err := c.client.Emails.Send(params)
	if err != nil {
		c.logger.Error(ctx, "failed to send email", err)
		return "", fmt.Errorf("resend: failed to send email: %w", err)
	}

	c.logger.Debug(ctx, "email sent")
	return res.Id, nil
}
