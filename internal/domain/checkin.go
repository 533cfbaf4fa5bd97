package domain

import "context"

// CheckInService validates attendance codes and records presence.
type CheckInService interface {
	CheckIn(ctx context.Context, eventID, userID, code string) error
}
