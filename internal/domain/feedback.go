package domain

import (
	"context"
	"time"
)

// Rating bounds for overall and matrix scores.
const (
	MinRating = 1
	MaxRating = 5
)

// Feedback is one participant's rating of an event.
// swagger:model Feedback
type Feedback struct {
	ID             string         `json:"id"`
	EventID        string         `json:"event_id"`
	UserID         string         `json:"user_id"`
	RegistrationID string         `json:"registration_id"`
	OverallRating  int            `json:"overall_rating"`
	MatrixRatings  map[string]int `json:"matrix_ratings"`
	Opinion        string         `json:"opinion"`
	SubmittedAt    time.Time      `json:"submitted_at"`
}

// FeedbackRepository defines storage operations for feedback.
type FeedbackRepository interface {
	// Create stores the feedback. Returns ErrFeedbackAlreadySubmitted for a second entry per (event, user).
	Create(ctx context.Context, fb *Feedback) error
}

// FeedbackService records feedback and maintains the event's rating aggregate.
type FeedbackService interface {
	Submit(ctx context.Context, fb *Feedback) error
}
