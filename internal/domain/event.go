package domain

import (
	"context"
	"time"
)

// RegistrationWindow is the registration state of an event.
type RegistrationWindow string

const (
	RegistrationUpcoming RegistrationWindow = "upcoming"
	RegistrationOpen     RegistrationWindow = "open"
	RegistrationClosed   RegistrationWindow = "closed"
)

// Event is the subset of an event record this service reads, plus the rating aggregate it maintains.
// swagger:model Event
type Event struct {
	ID                 string             `json:"id"`
	Title              string             `json:"title"`
	Date               time.Time          `json:"date"`
	MinTeamSize        int                `json:"min_team_size"`
	MaxTeamSize        int                `json:"max_team_size"`
	RegistrationStatus RegistrationWindow `json:"registration_status"`
	AttendanceCode     string             `json:"-"`
	IsFeedbackOpen     bool               `json:"is_feedback_open"`
	AvgRating          float64            `json:"avg_rating"`
	FeedbackCount      int                `json:"feedback_count"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

// AcceptsRegistrations reports whether the event is open and has not started at now.
func (e *Event) AcceptsRegistrations(now time.Time) bool {
	return e.RegistrationStatus == RegistrationOpen && now.Before(e.Date)
}

// AttendanceActive reports whether an attendance code is currently published.
func (e *Event) AttendanceActive() bool {
	return e.AttendanceCode != ""
}

// RatingWith returns the rolling average and count after adding one rating.
func (e *Event) RatingWith(rating int) (avg float64, count int) {
	count = e.FeedbackCount + 1
	avg = (e.AvgRating*float64(e.FeedbackCount) + float64(rating)) / float64(count)
	return avg, count
}

// EventRepository defines the event storage this service depends on.
type EventRepository interface {
	GetByID(ctx context.Context, id string) (*Event, error)
	// GetByIDForUpdate reads the event and locks its row until the surrounding transaction ends.
	GetByIDForUpdate(ctx context.Context, id string) (*Event, error)
	UpdateRating(ctx context.Context, id string, avgRating float64, feedbackCount int) error
}
