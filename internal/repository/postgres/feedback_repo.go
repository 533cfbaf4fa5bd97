package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"campusevents/internal/domain"
)

type feedbackRepository struct {
	DB dbtx
}

func NewFeedbackRepository(db *sql.DB) domain.FeedbackRepository {
	return &feedbackRepository{
		DB: db,
	}
}

// Create stores fb, assigning an ID when it has none.
func (r *feedbackRepository) Create(ctx context.Context, fb *domain.Feedback) error {
	if fb.ID == "" {
		fb.ID = uuid.NewString()
	}
	matrix := fb.MatrixRatings
	if matrix == nil {
		matrix = map[string]int{}
	}
	encoded, err := json.Marshal(matrix)
	if err != nil {
		return fmt.Errorf("encode matrix_ratings: %w", err)
	}
	query := `
		INSERT INTO feedback (id, event_id, user_id, registration_id, overall_rating, matrix_ratings, opinion, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = r.DB.ExecContext(ctx, query,
		fb.ID, fb.EventID, fb.UserID, fb.RegistrationID, fb.OverallRating, encoded, fb.Opinion, fb.SubmittedAt,
	)
	if err != nil {
		if constraint, ok := uniqueViolation(err); ok && constraint == "feedback_event_user_key" {
			return domain.ErrFeedbackAlreadySubmitted
		}
		return err
	}
	return nil
}
