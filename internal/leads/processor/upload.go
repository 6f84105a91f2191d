package processor

import (
	"context"
	"errors"
	"fmt"
	"io"

	"leads-server/internal/observability"
	"leads-server/internal/spreadsheet"
	"leads-server/internal/store"
)

const maxReportDetails = 10

// UploadSummary reports the outcome of a spreadsheet upload
type UploadSummary struct {
	Message        string        `json:"message"`
	Uploaded       int           `json:"uploaded"`
	Skipped        int           `json:"skipped"`
	Errors         int           `json:"errors"`
	TotalProcessed int           `json:"totalProcessed"`
	Details        UploadDetails `json:"details"`
}

type UploadDetails struct {
	SkippedDetails []string `json:"skippedDetails"`
	ErrorDetails   []string `json:"errorDetails"`
}

// UploadLeads imports the first sheet of a workbook.
// Rows are validated in sheet order, known and repeated lead ids are skipped and
// accepted rows receive consecutive upload sequence numbers before an ordered insert.
func (p *LeadProcessor) UploadLeads(ctx context.Context, r io.Reader) (UploadSummary, error) {
	rows, err := spreadsheet.Parse(r)
	if err != nil {
		p.logger.Error(ctx, "failed to parse spreadsheet", err)
		return UploadSummary{}, err
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "rows_parsed", Value: len(rows)})

	existing, err := p.store.GetAllLeadIDs(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to load existing lead ids", err)
		return UploadSummary{}, err
	}
	seen := make(map[string]struct{}, len(existing)+len(rows))
	for _, id := range existing {
		seen[id] = struct{}{}
	}

	var (
		queued  []store.CreateLeadParams
		skipped []string
		errs    []string
	)
	for _, row := range rows {
		fields, outcome, msg := validateRow(row)
		switch outcome {
		case rowBlank:
			continue
		case rowInvalid:
			errs = append(errs, msg)
			continue
		}

		if _, ok := seen[fields.LeadID]; ok {
			skipped = append(skipped, fmt.Sprintf("Row %d: Lead ID %s already exists", row.Number, fields.LeadID))
			continue
		}
		seen[fields.LeadID] = struct{}{}
		queued = append(queued, store.CreateLeadParams{LeadFields: fields})
	}

	inserted := 0
	if len(queued) > 0 {
		first, err := p.store.ReserveUploadSequence(ctx, len(queued))
		if err != nil {
			p.logger.Error(ctx, "failed to reserve upload sequence", err)
			return UploadSummary{}, err
		}
		for i := range queued {
			queued[i].UploadSequence = first + int64(i)
		}
		inserted, errs = p.persist(ctx, queued, errs)
	}

	summary := UploadSummary{
		Message:        fmt.Sprintf("Upload completed: %d leads inserted", inserted),
		Uploaded:       inserted,
		Skipped:        len(skipped),
		Errors:         len(errs),
		TotalProcessed: len(rows),
		Details: UploadDetails{
			SkippedDetails: firstN(skipped, maxReportDetails),
			ErrorDetails:   firstN(errs, maxReportDetails),
		},
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "uploaded", Value: summary.Uploaded},
		observability.Field{Key: "skipped", Value: summary.Skipped},
		observability.Field{Key: "errors", Value: summary.Errors},
	)
	p.logger.Info(ctx, "lead upload completed")

	return summary, nil
}

// persist writes the queued rows in order. A uniqueness conflict in the batch makes the
// remaining rows go through one at a time; any other batch failure is reported once.
func (p *LeadProcessor) persist(ctx context.Context, queued []store.CreateLeadParams, errs []string) (int, []string) {
	n, err := p.store.InsertLeadsOrdered(ctx, queued)
	if err == nil {
		return n, errs
	}

	var batchErr *store.BatchInsertError
	if !errors.As(err, &batchErr) {
		p.logger.Error(ctx, "lead batch insert failed", err)
		return 0, append(errs, "Bulk insert error: "+err.Error())
	}

	if !errors.Is(batchErr.Err, store.ErrDuplicateLead) {
		p.logger.Error(ctx, "lead batch insert failed", batchErr.Err)
		return batchErr.Inserted, append(errs, "Bulk insert error: "+batchErr.Err.Error())
	}

	p.logger.InfoWithError(ctx, "lead batch hit duplicate, inserting remaining rows individually", batchErr.Err)
	inserted := batchErr.Inserted
	for _, lead := range queued[batchErr.Inserted:] {
		if _, err := p.store.CreateLead(ctx, lead); err != nil {
			if errors.Is(err, store.ErrDuplicateLead) {
				errs = append(errs, fmt.Sprintf("Duplicate leadId: %s", lead.LeadID))
			} else {
				errs = append(errs, fmt.Sprintf("Error inserting %s: %s", lead.LeadID, err.Error()))
			}
			continue
		}
		inserted++
	}
	return inserted, errs
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		items = items[:n]
	}
	if items == nil {
		return []string{}
	}
	return items
}
