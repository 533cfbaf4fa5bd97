package services

import (
	"context"
	"errors"
	"fmt"

	"campusevents/internal/domain"
)

// wrapErr returns business errors as they are and wraps everything else with op.
func wrapErr(op string, err error) error {
	if err == nil || domain.IsBusinessError(err) {
		return err
	}
	return fmt.Errorf("%s: %w", op, err)
}

// participation returns the registration userID leads or belongs to in eventID, or nil.
func participation(ctx context.Context, repos domain.Repositories, eventID, userID string) (*domain.Registration, error) {
	reg, err := repos.Registrations.GetByID(ctx, domain.RegistrationID(eventID, userID))
	if err == nil {
		return reg, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get registration: %w", err)
	}
	reg, err = repos.Registrations.FindByParticipant(ctx, eventID, userID)
	if err == nil {
		return reg, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("find registration by participant: %w", err)
	}
	return nil, nil
}
