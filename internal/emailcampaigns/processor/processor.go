package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"strings"
	"time"

	"leads-server/internal/jobs"
	"leads-server/internal/observability"
	"leads-server/internal/store"

	"github.com/google/uuid"
)

var (
	ErrInvalidEmailType = errors.New("invalid email type")
	ErrFilterRequired   = errors.New("filter value is required for this email type")
	ErrNoRecipients     = errors.New("no leads match the selected recipients")
	ErrQueueUnavailable = errors.New("email queue unavailable")
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// CampaignStore defines the database operations required by CampaignProcessor
type CampaignStore interface {
	CountLeadsForEmail(ctx context.Context, filter store.LeadRecipientFilter) (int, error)
	ListEmailFeedbackByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]store.EmailFeedback, error)
	CountEmailFeedbackByUser(ctx context.Context, userID uuid.UUID) (int, error)
}

// CampaignQueue hands a campaign over to the background worker
type CampaignQueue interface {
	EnqueueLeadCampaign(ctx context.Context, payload jobs.LeadCampaignPayload) (string, error)
}

type CampaignProcessor struct {
	store  CampaignStore
	queue  CampaignQueue
	logger *observability.Logger
	now    func() time.Time
}

func New(store CampaignStore, queue CampaignQueue, logger *observability.Logger) CampaignProcessor {
	return CampaignProcessor{
		store:  store,
		queue:  queue,
		logger: logger,
		now:    time.Now,
	}
}

type FilterCriteria struct {
	Category string `json:"category"`
	City     string `json:"city"`
	Country  string `json:"country"`
}

type SendCampaignRequest struct {
	Subject        string
	Message        string
	EmailType      string
	FilterCriteria FilterCriteria
	LeadIDs        []uuid.UUID
}

type SendCampaignResponse struct {
	Message    string `json:"message"`
	TaskID     string `json:"taskId"`
	Recipients int    `json:"recipients"`
}

// SendCampaign checks the recipient selection and queues the send
func (p *CampaignProcessor) SendCampaign(ctx context.Context, userID uuid.UUID, req SendCampaignRequest) (SendCampaignResponse, error) {
	filter, err := recipientFilter(req)
	if err != nil {
		return SendCampaignResponse{}, err
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: userID.String()},
		observability.Field{Key: "email_type", Value: filter.EmailType},
	)

	count, err := p.store.CountLeadsForEmail(ctx, filter)
	if err != nil {
		p.logger.Error(ctx, "failed to count campaign recipients", err)
		return SendCampaignResponse{}, err
	}
	if count == 0 {
		return SendCampaignResponse{}, ErrNoRecipients
	}

	taskID, err := p.queue.EnqueueLeadCampaign(ctx, jobs.LeadCampaignPayload{
		UserID:      userID,
		Subject:     strings.TrimSpace(req.Subject),
		Message:     strings.TrimSpace(req.Message),
		EmailType:   filter.EmailType,
		Category:    filter.Category,
		City:        filter.City,
		Country:     filter.Country,
		LeadIDs:     filter.LeadIDs,
		RequestedAt: p.now().UTC(),
	})
	if err != nil {
		return SendCampaignResponse{}, errors.Join(ErrQueueUnavailable, err)
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "task_id", Value: taskID})
	p.logger.Info(ctx, "email campaign queued")

	return SendCampaignResponse{
		Message:    "Email campaign queued",
		TaskID:     taskID,
		Recipients: count,
	}, nil
}

func recipientFilter(req SendCampaignRequest) (store.LeadRecipientFilter, error) {
	filter := store.LeadRecipientFilter{EmailType: strings.ToLower(strings.TrimSpace(req.EmailType))}

	var value string
	switch filter.EmailType {
	case store.EmailTypeBulk:
		return filter, nil
	case store.EmailTypeSelected:
		if len(req.LeadIDs) == 0 {
			return store.LeadRecipientFilter{}, ErrNoRecipients
		}
		filter.LeadIDs = req.LeadIDs
		return filter, nil
	case store.EmailTypeCategory:
		value = strings.TrimSpace(req.FilterCriteria.Category)
		filter.Category = value
	case store.EmailTypeCity:
		value = strings.TrimSpace(req.FilterCriteria.City)
		filter.City = value
	case store.EmailTypeCountry:
		value = strings.TrimSpace(req.FilterCriteria.Country)
		filter.Country = value
	default:
		return store.LeadRecipientFilter{}, ErrInvalidEmailType
	}

	if value == "" {
		return store.LeadRecipientFilter{}, ErrFilterRequired
	}
	return filter, nil
}

type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalItems  int  `json:"totalItems"`
	HasNext     bool `json:"hasNext"`
	HasPrev     bool `json:"hasPrev"`
}

type ListFeedbackResponse struct {
	Feedback   []store.EmailFeedback `json:"feedback"`
	Pagination Pagination            `json:"pagination"`
}

// ListFeedback returns a page of the user's campaign records, newest first
func (p *CampaignProcessor) ListFeedback(ctx context.Context, userID uuid.UUID, page, limit int) (ListFeedbackResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	total, err := p.store.CountEmailFeedbackByUser(ctx, userID)
	if err != nil {
		return ListFeedbackResponse{}, err
	}

	feedback, err := p.store.ListEmailFeedbackByUser(ctx, userID, limit, (page-1)*limit)
	if err != nil {
		return ListFeedbackResponse{}, err
	}

	totalPages := (total + limit - 1) / limit
	return ListFeedbackResponse{
		Feedback: feedback,
		Pagination: Pagination{
			CurrentPage: page,
			TotalPages:  totalPages,
			TotalItems:  total,
			HasNext:     page < totalPages,
			HasPrev:     page > 1,
		},
	}, nil
}
