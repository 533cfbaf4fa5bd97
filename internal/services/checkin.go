package services

import (
	"context"
	"time"

	"campusevents/internal/domain"
)

type checkInService struct {
	store          domain.Store
	contextTimeout time.Duration
}

// NewCheckInService creates the attendance code validator.
func NewCheckInService(store domain.Store, timeout time.Duration) domain.CheckInService {
	return &checkInService{
		store:          store,
		contextTimeout: timeout,
	}
}

// CheckIn records userID as present at eventID when code matches the published attendance code.
// A wrong code never mutates state.
func (s *checkInService) CheckIn(ctx context.Context, eventID, userID, code string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.store.WithinTx(ctx, func(ctx context.Context, repos domain.Repositories) error {
		event, err := repos.Events.GetByID(ctx, eventID)
		if err != nil {
			return wrapErr("get event", err)
		}
		if !event.AttendanceActive() {
			return domain.ErrAttendanceNotActive
		}
		if code != event.AttendanceCode {
			return domain.ErrIncorrectCode
		}

		found, err := participation(ctx, repos, eventID, userID)
		if err != nil {
			return err
		}
		if found == nil {
			return domain.ErrNotRegistered
		}
		reg, err := repos.Registrations.GetByIDForUpdate(ctx, found.ID)
		if err != nil {
			return wrapErr("lock registration", err)
		}
		if reg.IsAttended(userID) {
			return domain.ErrAlreadyCheckedIn
		}

		// A team counts as attended once its leader is in.
		status := reg.Status
		if !reg.IsTeam() || userID == reg.UserID {
			status = domain.StatusAttended
		}
		if err := repos.Registrations.MarkAttendance(ctx, reg.ID, userID, status); err != nil {
			return wrapErr("mark attendance", err)
		}
		return nil
	})
}
