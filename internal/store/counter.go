package store

import (
	"context"
	"fmt"
)

const uploadSequenceCounter = "lead_upload_sequence"

// The counter never falls behind the highest stored sequence, so rows written
// outside the counter cannot be overtaken.
const sqlReserveUploadSequence = `
INSERT INTO counters (name, value)
VALUES ($1, (SELECT COALESCE(MAX(upload_sequence), 0) FROM leads) + $2)
ON CONFLICT (name) DO UPDATE
SET value = GREATEST(counters.value, (SELECT COALESCE(MAX(upload_sequence), 0) FROM leads)) + $2
RETURNING value
`

// ReserveUploadSequence atomically reserves n consecutive upload sequence values
// and returns the first one. Concurrent callers receive disjoint blocks.
func (s *Store) ReserveUploadSequence(ctx context.Context, n int) (int64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("failed to reserve upload sequence: invalid block size %d", n)
	}

	var last int64
	err := s.db.GetContext(ctx, &last, sqlReserveUploadSequence, uploadSequenceCounter, n)
	if err != nil {
		s.logger.Error(ctx, "failed to reserve upload sequence", err)
		return 0, fmt.Errorf("failed to reserve upload sequence: %w", err)
	}
	return last - int64(n) + 1, nil
}
