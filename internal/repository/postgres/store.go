package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/lib/pq"

	"campusevents/internal/domain"
)

// Postgres error codes this package reacts to.
const (
	codeUniqueViolation      = "23505"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

const retryBackoff = 20 * time.Millisecond

// dbtx is satisfied by both *sql.DB and *sql.Tx.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type store struct {
	DB         *sql.DB
	maxRetries int
	logger     *slog.Logger
}

// NewStore returns a domain.Store backed by Postgres. Transactions run SERIALIZABLE and are
// retried up to maxRetries times on serialization failures and deadlocks.
func NewStore(db *sql.DB, maxRetries int, logger *slog.Logger) domain.Store {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &store{DB: db, maxRetries: maxRetries, logger: logger}
}

func newRepositories(q dbtx) domain.Repositories {
	return domain.Repositories{
		Events:        &eventRepository{DB: q},
		Registrations: &registrationRepository{DB: q},
		Invitations:   &invitationRepository{DB: q},
		Feedback:      &feedbackRepository{DB: q},
		Profiles:      &profileRepository{DB: q},
	}
}

func (s *store) Repositories() domain.Repositories {
	return newRepositories(s.DB)
}

func (s *store) WithinTx(ctx context.Context, fn func(ctx context.Context, repos domain.Repositories) error) error {
	var err error
	for attempt := 1; attempt <= s.maxRetries; attempt++ {
		err = s.runTx(ctx, fn)
		if err == nil || !isRetryable(err) {
			return err
		}
		s.logger.WarnContext(ctx, "transaction conflict, retrying", "attempt", attempt, "err", err)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * retryBackoff):
		}
	}
	return fmt.Errorf("%w: %v", domain.ErrTransient, err)
}

func (s *store) runTx(ctx context.Context, fn func(ctx context.Context, repos domain.Repositories) error) error {
	tx, err := s.DB.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(ctx, newRepositories(tx)); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func isRetryable(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == codeSerializationFailure || pqErr.Code == codeDeadlockDetected
}

// uniqueViolation returns the violated constraint name when err is a unique violation.
func uniqueViolation(err error) (string, bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == codeUniqueViolation {
		return pqErr.Constraint, true
	}
	return "", false
}

// requireRow returns notFound when result touched no rows.
func requireRow(result sql.Result, notFound error) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return notFound
	}
	return nil
}
