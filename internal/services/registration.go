package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"

	"campusevents/internal/domain"
)

type registrationService struct {
	store          domain.Store
	now            func() time.Time
	contextTimeout time.Duration
}

// NewRegistrationService creates a RegistrationService backed by store.
func NewRegistrationService(store domain.Store, timeout time.Duration) domain.RegistrationService {
	return &registrationService{
		store:          store,
		now:            time.Now,
		contextTimeout: timeout,
	}
}

func (s *registrationService) Register(ctx context.Context, eventID, userID string, team *domain.TeamDetails) (*domain.Registration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var reg *domain.Registration
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos domain.Repositories) error {
		event, err := repos.Events.GetByID(ctx, eventID)
		if err != nil {
			return wrapErr("get event", err)
		}
		now := s.now()
		if !event.AcceptsRegistrations(now) {
			return domain.ErrRegistrationClosed
		}

		profile, err := repos.Profiles.GetByID(ctx, userID)
		if err != nil {
			return wrapErr("get profile", err)
		}
		details := profile.Snapshot()
		details.RollNo = strings.TrimSpace(details.RollNo)
		details.Mobile = strings.TrimSpace(details.Mobile)
		if details.RollNo == "" {
			return domain.ErrMissingRollNo
		}
		if details.Mobile == "" {
			return domain.ErrMissingMobile
		}

		existing, err := participation(ctx, repos, eventID, userID)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrAlreadyRegistered
		}

		if team != nil {
			if err := s.checkTeam(ctx, repos, event, team); err != nil {
				return err
			}
		}

		candidate := domain.NewRegistration(event, userID, details, team, now)
		rollNos := candidate.RollNumbers()
		if len(lo.Uniq(rollNos)) != len(rollNos) {
			return domain.ErrDuplicateParticipant
		}
		if len(lo.Uniq(candidate.ParticipantIDs)) != len(candidate.ParticipantIDs) {
			return domain.ErrDuplicateParticipant
		}
		taken, err := repos.Registrations.ListTakenRollNumbers(ctx, eventID, rollNos)
		if err != nil {
			return fmt.Errorf("list taken roll numbers: %w", err)
		}
		if len(taken) > 0 {
			return domain.ErrDuplicateParticipant
		}

		if err := repos.Registrations.Create(ctx, candidate); err != nil {
			return wrapErr("create registration", err)
		}
		reg = candidate
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reg, nil
}

func (s *registrationService) checkTeam(ctx context.Context, repos domain.Repositories, event *domain.Event, team *domain.TeamDetails) error {
	name := strings.TrimSpace(team.Name)
	if name == "" {
		return fmt.Errorf("%w: team name is required", domain.ErrInvalidInput)
	}
	for _, m := range team.Members {
		if strings.TrimSpace(m.RollNo) == "" {
			return domain.ErrMissingRollNo
		}
	}
	if 1+len(team.Members) > event.MaxTeamSize {
		return domain.ErrTeamFull
	}
	exists, err := repos.Registrations.TeamNameExists(ctx, event.ID, domain.TeamNameKey(name))
	if err != nil {
		return fmt.Errorf("check team name: %w", err)
	}
	if exists {
		return domain.ErrDuplicateTeamName
	}
	return nil
}

func (s *registrationService) FindForParticipant(ctx context.Context, eventID, userID string) (*domain.Registration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	reg, err := participation(ctx, s.store.Repositories(), eventID, userID)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, domain.ErrRegistrationNotFound
	}
	return reg, nil
}

func (s *registrationService) ListForEvent(ctx context.Context, eventID string) ([]*domain.Registration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	repos := s.store.Repositories()
	if _, err := repos.Events.GetByID(ctx, eventID); err != nil {
		return nil, wrapErr("get event", err)
	}
	regs, err := repos.Registrations.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	return regs, nil
}
