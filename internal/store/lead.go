package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const leadColumns = `id, lead_id, name, email, phone, category, city, country, address_street, linkedin,
facebook_link, website_link, google_map_link, instagram, last_verified_at, upload_sequence, created_at, updated_at`

func (f LeadFields) args() []interface{} {
	return []interface{}{
		f.LeadID,
		f.Name,
		f.Email,
		f.Phone,
		f.Category,
		f.City,
		f.Country,
		f.AddressStreet,
		f.LinkedIn,
		f.FacebookLink,
		f.WebsiteLink,
		f.GoogleMapLink,
		f.Instagram,
		f.LastVerifiedAt,
	}
}

const sqlGetAllLeadIDs = `SELECT lead_id FROM leads`

// GetAllLeadIDs returns every stored external lead identifier
func (s *Store) GetAllLeadIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := s.db.SelectContext(ctx, &ids, sqlGetAllLeadIDs)
	if err != nil {
		s.logger.Error(ctx, "failed to get lead ids", err)
		return nil, fmt.Errorf("failed to get lead ids: %w", err)
	}
	return ids, nil
}

const sqlCreateLead = `
INSERT INTO leads (lead_id, name, email, phone, category, city, country, address_street, linkedin,
	facebook_link, website_link, google_map_link, instagram, last_verified_at, upload_sequence)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
RETURNING ` + leadColumns

// CreateLead inserts a single lead. Returns ErrDuplicateLead if the lead_id is taken.
func (s *Store) CreateLead(ctx context.Context, params CreateLeadParams) (Lead, error) {
	var lead Lead
	args := append(params.args(), params.UploadSequence)
	err := s.db.GetContext(ctx, &lead, sqlCreateLead, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return Lead{}, fmt.Errorf("%w: %s", ErrDuplicateLead, params.LeadID)
		}
		s.logger.Error(ctx, "failed to create lead", err)
		return Lead{}, fmt.Errorf("failed to create lead: %w", err)
	}
	return lead, nil
}

const sqlInsertLeadRow = `
INSERT INTO leads (lead_id, name, email, phone, category, city, country, address_street, linkedin,
	facebook_link, website_link, google_map_link, instagram, last_verified_at, upload_sequence)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
`

// InsertLeadsOrdered writes leads in slice order inside one transaction.
// Each row runs under a savepoint; on the first failing row the savepoint is rolled back,
// the rows before it are committed and a *BatchInsertError is returned.
// Any other error means nothing was committed.
func (s *Store) InsertLeadsOrdered(ctx context.Context, leads []CreateLeadParams) (int, error) {
	if len(leads) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin lead batch transaction", err)
		return 0, fmt.Errorf("failed to begin lead batch transaction: %w", err)
	}
	defer tx.Rollback()

	for i, lead := range leads {
		if _, err := tx.ExecContext(ctx, "SAVEPOINT lead_row"); err != nil {
			s.logger.Error(ctx, "failed to create savepoint", err)
			return 0, fmt.Errorf("failed to create savepoint: %w", err)
		}

		args := append(lead.args(), lead.UploadSequence)
		if _, rowErr := tx.ExecContext(ctx, sqlInsertLeadRow, args...); rowErr != nil {
			if _, err := tx.ExecContext(ctx, "ROLLBACK TO SAVEPOINT lead_row"); err != nil {
				s.logger.Error(ctx, "failed to roll back to savepoint", err)
				return 0, fmt.Errorf("failed to roll back to savepoint: %w", err)
			}
			if err := tx.Commit(); err != nil {
				s.logger.Error(ctx, "failed to commit lead batch prefix", err)
				return 0, fmt.Errorf("failed to commit lead batch prefix: %w", err)
			}
			if isUniqueViolation(rowErr) {
				rowErr = fmt.Errorf("%w: %s", ErrDuplicateLead, lead.LeadID)
			}
			return i, &BatchInsertError{Inserted: i, Err: rowErr}
		}

		if _, err := tx.ExecContext(ctx, "RELEASE SAVEPOINT lead_row"); err != nil {
			s.logger.Error(ctx, "failed to release savepoint", err)
			return 0, fmt.Errorf("failed to release savepoint: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit lead batch", err)
		return 0, fmt.Errorf("failed to commit lead batch: %w", err)
	}
	return len(leads), nil
}

const sqlListLeads = `
SELECT ` + leadColumns + `
FROM leads
ORDER BY upload_sequence DESC, created_at DESC
LIMIT $1 OFFSET $2
`

// ListLeads returns a page of leads, most recently uploaded first
func (s *Store) ListLeads(ctx context.Context, limit, offset int) ([]Lead, error) {
	leads := []Lead{}
	err := s.db.SelectContext(ctx, &leads, sqlListLeads, limit, offset)
	if err != nil {
		s.logger.Error(ctx, "failed to list leads", err)
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	return leads, nil
}

const sqlCountLeads = `SELECT COUNT(*) FROM leads`

func (s *Store) CountLeads(ctx context.Context) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountLeads)
	if err != nil {
		s.logger.Error(ctx, "failed to count leads", err)
		return 0, fmt.Errorf("failed to count leads: %w", err)
	}
	return count, nil
}

const sqlGetLeadByID = `
SELECT ` + leadColumns + `
FROM leads
WHERE id = $1
`

func (s *Store) GetLeadByID(ctx context.Context, id uuid.UUID) (Lead, error) {
	var lead Lead
	err := s.db.GetContext(ctx, &lead, sqlGetLeadByID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Lead{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get lead by id", err)
		return Lead{}, fmt.Errorf("failed to get lead by id: %w", err)
	}
	return lead, nil
}

const sqlUpdateLead = `
UPDATE leads
SET lead_id = $1, name = $2, email = $3, phone = $4, category = $5, city = $6, country = $7,
	address_street = $8, linkedin = $9, facebook_link = $10, website_link = $11,
	google_map_link = $12, instagram = $13, last_verified_at = $14, updated_at = NOW()
WHERE id = $15
RETURNING ` + leadColumns

// UpdateLead replaces every editable field of the lead
func (s *Store) UpdateLead(ctx context.Context, id uuid.UUID, fields LeadFields) (Lead, error) {
	var lead Lead
	args := append(fields.args(), id)
	err := s.db.GetContext(ctx, &lead, sqlUpdateLead, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Lead{}, ErrNotFound
		}
		if isUniqueViolation(err) {
			return Lead{}, fmt.Errorf("%w: %s", ErrDuplicateLead, fields.LeadID)
		}
		s.logger.Error(ctx, "failed to update lead", err)
		return Lead{}, fmt.Errorf("failed to update lead: %w", err)
	}
	return lead, nil
}

const sqlDeleteLead = `DELETE FROM leads WHERE id = $1`

func (s *Store) DeleteLead(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlDeleteLead, id)
	if err != nil {
		s.logger.Error(ctx, "failed to delete lead", err)
		return fmt.Errorf("failed to delete lead: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read deleted rows: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// LeadRecipientFilter selects the leads targeted by an email campaign
type LeadRecipientFilter struct {
	EmailType string
	Category  string
	City      string
	Country   string
	LeadIDs   []uuid.UUID
}

func (f LeadRecipientFilter) where() (string, []interface{}, error) {
	switch f.EmailType {
	case EmailTypeBulk:
		return "", nil, nil
	case EmailTypeCategory:
		return "WHERE LOWER(category) = LOWER($1)", []interface{}{f.Category}, nil
	case EmailTypeCity:
		return "WHERE LOWER(city) = LOWER($1)", []interface{}{f.City}, nil
	case EmailTypeCountry:
		return "WHERE LOWER(country) = LOWER($1)", []interface{}{f.Country}, nil
	case EmailTypeSelected:
		ids := make([]string, len(f.LeadIDs))
		for i, id := range f.LeadIDs {
			ids[i] = id.String()
		}
		return "WHERE id = ANY($1::uuid[])", []interface{}{ids}, nil
	default:
		return "", nil, fmt.Errorf("unknown email type %q", f.EmailType)
	}
}

// ListLeadsForEmail returns the leads matched by the campaign filter in upload order
func (s *Store) ListLeadsForEmail(ctx context.Context, filter LeadRecipientFilter) ([]Lead, error) {
	where, args, err := filter.where()
	if err != nil {
		return nil, err
	}
	query := strings.Join([]string{"SELECT", leadColumns, "FROM leads", where, "ORDER BY upload_sequence ASC"}, " ")

	leads := []Lead{}
	if err := s.db.SelectContext(ctx, &leads, query, args...); err != nil {
		s.logger.Error(ctx, "failed to list leads for email", err)
		return nil, fmt.Errorf("failed to list leads for email: %w", err)
	}
	return leads, nil
}

// CountLeadsForEmail counts the leads matched by the campaign filter
func (s *Store) CountLeadsForEmail(ctx context.Context, filter LeadRecipientFilter) (int, error) {
	where, args, err := filter.where()
	if err != nil {
		return 0, err
	}
	query := strings.Join([]string{"SELECT COUNT(*) FROM leads", where}, " ")

	var count int
	if err := s.db.GetContext(ctx, &count, query, args...); err != nil {
		s.logger.Error(ctx, "failed to count leads for email", err)
		return 0, fmt.Errorf("failed to count leads for email: %w", err)
	}
	return count, nil
}
