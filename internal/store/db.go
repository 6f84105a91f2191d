package store

import (
	"errors"
	"fmt"

	"leads-server/internal/observability"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib" // Import the pgx stdlib for sqlx
	"github.com/jmoiron/sqlx"
)

var ErrNotFound = errors.New("not found")

// ErrDuplicateLead is returned when a lead_id is already stored
var ErrDuplicateLead = errors.New("duplicate lead id")

const pgUniqueViolation = "23505"

type Store struct {
	db     *sqlx.DB
	logger *observability.Logger
}

func New(connectionString string, logger *observability.Logger) (Store, error) {
	db, err := sqlx.Open("pgx", connectionString)
	if err != nil {
		return Store{}, fmt.Errorf("failed to open database: %w", err)
	}
	return Store{db: db, logger: logger}, nil
}

// DB returns the underlying database connection
func (s *Store) DB() *sqlx.DB {
	return s.db
}

// Close closes the underlying database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// BatchInsertError reports a failed ordered batch write.
// The first Inserted rows of the batch were committed; the row at index Inserted failed with Err.
type BatchInsertError struct {
	Inserted int
	Err      error
}

func (e *BatchInsertError) Error() string {
	return fmt.Sprintf("batch insert stopped at row %d: %v", e.Inserted, e.Err)
}

func (e *BatchInsertError) Unwrap() error {
	return e.Err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
