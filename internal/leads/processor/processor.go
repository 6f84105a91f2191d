package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"leads-server/internal/observability"
	"leads-server/internal/spreadsheet"
	"leads-server/internal/store"

	"github.com/google/uuid"
)

// LeadStore defines the database operations required by LeadProcessor
type LeadStore interface {
	GetAllLeadIDs(ctx context.Context) ([]string, error)
	ReserveUploadSequence(ctx context.Context, n int) (int64, error)
	InsertLeadsOrdered(ctx context.Context, leads []store.CreateLeadParams) (int, error)
	CreateLead(ctx context.Context, params store.CreateLeadParams) (store.Lead, error)
	ListLeads(ctx context.Context, limit, offset int) ([]store.Lead, error)
	CountLeads(ctx context.Context) (int, error)
	GetLeadByID(ctx context.Context, id uuid.UUID) (store.Lead, error)
	UpdateLead(ctx context.Context, id uuid.UUID, fields store.LeadFields) (store.Lead, error)
	DeleteLead(ctx context.Context, id uuid.UUID) error
}

var (
	ErrLeadNotFound    = errors.New("lead not found")
	ErrLeadIDConflict  = errors.New("lead id already exists")
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrMissingRequired = errors.New("lead id, name and email are required")
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 500
)

type LeadProcessor struct {
	store  LeadStore
	logger *observability.Logger
}

func New(store LeadStore, logger *observability.Logger) LeadProcessor {
	return LeadProcessor{
		store:  store,
		logger: logger,
	}
}

// Pagination describes the position of a page within the full lead list
type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalItems  int  `json:"totalItems"`
	HasNext     bool `json:"hasNext"`
	HasPrev     bool `json:"hasPrev"`
}

type ListLeadsResult struct {
	Leads      []store.Lead `json:"leads"`
	Pagination Pagination   `json:"pagination"`
}

// NewPagination clamps page and limit and derives the page counts
func NewPagination(page, limit, total int) (Pagination, int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	totalPages := (total + limit - 1) / limit
	return Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalItems:  total,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
	}, limit, (page - 1) * limit
}

// ListLeads returns a page of leads ordered by upload sequence, newest first
func (p *LeadProcessor) ListLeads(ctx context.Context, page, limit int) (ListLeadsResult, error) {
	total, err := p.store.CountLeads(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to count leads", err)
		return ListLeadsResult{}, err
	}

	pagination, limit, offset := NewPagination(page, limit, total)
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "page", Value: pagination.CurrentPage},
		observability.Field{Key: "limit", Value: limit},
	)

	leads, err := p.store.ListLeads(ctx, limit, offset)
	if err != nil {
		p.logger.Error(ctx, "failed to list leads", err)
		return ListLeadsResult{}, err
	}

	return ListLeadsResult{Leads: leads, Pagination: pagination}, nil
}

func (p *LeadProcessor) GetLead(ctx context.Context, id uuid.UUID) (store.Lead, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "lead_uuid", Value: id.String()})

	lead, err := p.store.GetLeadByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Lead{}, ErrLeadNotFound
		}
		p.logger.Error(ctx, "failed to get lead", err)
		return store.Lead{}, err
	}
	return lead, nil
}

// UpdateLead replaces the editable fields of a lead
func (p *LeadProcessor) UpdateLead(ctx context.Context, id uuid.UUID, fields store.LeadFields) (store.Lead, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "lead_uuid", Value: id.String()})

	fields.LeadID = strings.TrimSpace(fields.LeadID)
	fields.Name = strings.TrimSpace(fields.Name)
	fields.Email = strings.ToLower(strings.TrimSpace(fields.Email))
	if fields.LeadID == "" || fields.Name == "" || fields.Email == "" {
		return store.Lead{}, ErrMissingRequired
	}
	if !emailPattern.MatchString(fields.Email) {
		return store.Lead{}, ErrInvalidEmail
	}

	lead, err := p.store.UpdateLead(ctx, id, fields)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return store.Lead{}, ErrLeadNotFound
		case errors.Is(err, store.ErrDuplicateLead):
			return store.Lead{}, ErrLeadIDConflict
		}
		p.logger.Error(ctx, "failed to update lead", err)
		return store.Lead{}, err
	}

	p.logger.Info(ctx, "lead updated")
	return lead, nil
}

func (p *LeadProcessor) DeleteLead(ctx context.Context, id uuid.UUID) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "lead_uuid", Value: id.String()})

	if err := p.store.DeleteLead(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrLeadNotFound
		}
		p.logger.Error(ctx, "failed to delete lead", err)
		return err
	}

	p.logger.Info(ctx, "lead deleted")
	return nil
}

// exportHeaders use the upload header spellings so an export can be uploaded again
var exportHeaders = []string{
	"leadId", "name", "email", "phone", "category", "city", "country", "addressStreet",
	"linkedin", "facebookLink", "websiteLink", "googleMapLink", "instagram", "lastVerifiedAt",
}

// ExportLeads writes every lead as a workbook in upload order
func (p *LeadProcessor) ExportLeads(ctx context.Context, w io.Writer) error {
	total, err := p.store.CountLeads(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to count leads for export", err)
		return err
	}

	rows := make([][]string, 0, total)
	for offset := 0; offset < total; offset += maxPageLimit {
		leads, err := p.store.ListLeads(ctx, maxPageLimit, offset)
		if err != nil {
			p.logger.Error(ctx, "failed to list leads for export", err)
			return err
		}
		for _, l := range leads {
			rows = append(rows, exportRow(l))
		}
	}

	// Listing is newest first
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}

	if err := spreadsheet.Write(w, exportHeaders, rows); err != nil {
		p.logger.Error(ctx, "failed to write lead export", err)
		return fmt.Errorf("failed to export leads: %w", err)
	}
	return nil
}

func exportRow(l store.Lead) []string {
	verified := ""
	if l.LastVerifiedAt != nil {
		verified = l.LastVerifiedAt.UTC().Format(time.RFC3339)
	}
	return []string{
		l.LeadID, l.Name, l.Email, deref(l.Phone), deref(l.Category), deref(l.City), deref(l.Country),
		deref(l.AddressStreet), deref(l.LinkedIn), deref(l.FacebookLink), deref(l.WebsiteLink),
		deref(l.GoogleMapLink), deref(l.Instagram), verified,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
