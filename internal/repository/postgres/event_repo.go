package postgres

import (
	"context"
	"database/sql"
	"errors"

	"campusevents/internal/domain"
)

type eventRepository struct {
	DB dbtx
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

const eventColumns = `id, title, date, min_team_size, max_team_size, registration_status,
		attendance_code, is_feedback_open, avg_rating, feedback_count, created_at, updated_at`

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, id))
}

func (r *eventRepository) GetByIDForUpdate(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, id))
}

func (r *eventRepository) scanOne(row *sql.Row) (*domain.Event, error) {
	e := &domain.Event{}
	var codeNull sql.NullString
	var status string
	err := row.Scan(
		&e.ID, &e.Title, &e.Date, &e.MinTeamSize, &e.MaxTeamSize, &status,
		&codeNull, &e.IsFeedbackOpen, &e.AvgRating, &e.FeedbackCount, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, err
	}
	e.RegistrationStatus = domain.RegistrationWindow(status)
	e.AttendanceCode = codeNull.String
	return e, nil
}

func (r *eventRepository) UpdateRating(ctx context.Context, id string, avgRating float64, feedbackCount int) error {
	query := `
		UPDATE events
		SET avg_rating = $2, feedback_count = $3, updated_at = NOW()
		WHERE id = $1
	`
	result, err := r.DB.ExecContext(ctx, query, id, avgRating, feedbackCount)
	if err != nil {
		return err
	}
	return requireRow(result, domain.ErrEventNotFound)
}
