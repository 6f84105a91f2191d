package bootstrap

import (
	"context"
	"fmt"

	"leads-server/internal/config"
	"leads-server/internal/observability"
	"leads-server/internal/store"

	authHandler "leads-server/internal/auth/handler"
	authProcessor "leads-server/internal/auth/processor"
	billingHandler "leads-server/internal/billing/handler"
	billingProcessor "leads-server/internal/billing/processor"
	"leads-server/internal/clients/googleai"
	openaiClient "leads-server/internal/clients/openai"
	redisClient "leads-server/internal/clients/redis"
	composeHandler "leads-server/internal/compose/handler"
	composeProcessor "leads-server/internal/compose/processor"
	campaignHandler "leads-server/internal/emailcampaigns/handler"
	campaignProcessor "leads-server/internal/emailcampaigns/processor"
	"leads-server/internal/jobs"
	leadsHandler "leads-server/internal/leads/handler"
	leadsProcessor "leads-server/internal/leads/processor"
	"leads-server/internal/ratelimit"
	referralHandler "leads-server/internal/referral/handler"
	referralProcessor "leads-server/internal/referral/processor"

	"github.com/hibiken/asynq"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger

	// Handlers
	AuthHandler     authHandler.Handler
	LeadsHandler    leadsHandler.Handler
	CampaignHandler campaignHandler.Handler
	ReferralHandler referralHandler.Handler
	ComposeHandler  composeHandler.Handler
	BillingHandler  billingHandler.Handler

	RateLimiter *ratelimit.Service

	// Clients (for cleanup)
	RedisClient *redisClient.Client
	JobClient   *jobs.Client
	aiCloser    func() error
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	var err error
	deps.Store, err = store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Redis backs the rate limiter; without it requests are not limited
	deps.RedisClient, err = redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		logger.InfoWithError(ctx, "redis unavailable, rate limiting disabled", err)
	}
	deps.RateLimiter = ratelimit.NewService(deps.RedisClient, logger)

	deps.JobClient = jobs.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}, logger)

	generator, closeGenerator, err := newTextGenerator(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	deps.aiCloser = closeGenerator

	// Initialize auth processor and handler
	authProc := authProcessor.New(cfg.Auth.JWTSecret, logger)
	deps.AuthHandler = authHandler.New(authProc, logger)

	// Initialize leads processor and handler
	leadsProc := leadsProcessor.New(&deps.Store, logger)
	deps.LeadsHandler = leadsHandler.New(leadsProc, cfg.Server.MaxUploadBytes, logger)

	// Initialize email campaign processor and handler
	campaignProc := campaignProcessor.New(&deps.Store, deps.JobClient, logger)
	deps.CampaignHandler = campaignHandler.New(campaignProc, logger)

	// Initialize referral processor and handler
	referralProc := referralProcessor.New(&deps.Store, logger)
	deps.ReferralHandler = referralHandler.New(referralProc, logger)

	// Initialize compose processor and handler
	composeProc := composeProcessor.New(generator, &deps.Store, logger)
	deps.ComposeHandler = composeHandler.New(composeProc, logger)

	// Initialize billing processor and handler
	billingProc := billingProcessor.New(cfg.Services.StripeWebhookSecret, &deps.Store, &referralProc, logger)
	deps.BillingHandler = billingHandler.New(billingProc, logger)

	return deps, nil
}

// newTextGenerator selects the compose model provider named by AI_PROVIDER
func newTextGenerator(ctx context.Context, cfg *config.Config, logger *observability.Logger) (composeProcessor.TextGenerator, func() error, error) {
	switch cfg.Services.AIProvider {
	case "openai":
		client, err := openaiClient.NewChatClient(cfg.Services.OpenAIAPIKey, cfg.Services.OpenAIModel, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create openai client: %w", err)
		}
		return client, func() error { return nil }, nil
	default:
		client, err := googleai.NewTextClient(ctx, cfg.Services.GoogleAIAPIKey, cfg.Services.GoogleAIModel, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return client, client.Close, nil
	}
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	ctx := context.Background()
	if d.JobClient != nil {
		if err := d.JobClient.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close job client", err)
		}
	}
	if err := d.RedisClient.Close(); err != nil {
		d.Logger.Error(ctx, "failed to close redis client", err)
	}
	if d.aiCloser != nil {
		if err := d.aiCloser(); err != nil {
			d.Logger.Error(ctx, "failed to close ai client", err)
		}
	}
	if err := d.Store.Close(); err != nil {
		d.Logger.Error(ctx, "failed to close database", err)
	}
}
