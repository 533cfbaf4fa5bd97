package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/samber/lo"

	"campusevents/internal/domain"
)

const (
	minSearchTermLen = 2
	maxCandidates    = 20
)

type invitationService struct {
	store          domain.Store
	notifier       domain.InvitationNotifier
	logger         *slog.Logger
	now            func() time.Time
	contextTimeout time.Duration
}

// NewInvitationService creates the team-formation broker. notifier is told about committed
// changes; its failures are logged and never fail the operation.
func NewInvitationService(store domain.Store, notifier domain.InvitationNotifier, logger *slog.Logger, timeout time.Duration) domain.InvitationService {
	return &invitationService{
		store:          store,
		notifier:       notifier,
		logger:         logger,
		now:            time.Now,
		contextTimeout: timeout,
	}
}

func (s *invitationService) SearchCandidates(ctx context.Context, term string) ([]*domain.UserProfile, error) {
	term = strings.TrimSpace(term)
	if utf8.RuneCountInString(term) < minSearchTermLen {
		return []*domain.UserProfile{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	profiles, err := s.store.Repositories().Profiles.Search(ctx, term, maxCandidates)
	if err != nil {
		return nil, fmt.Errorf("search profiles: %w", err)
	}
	return profiles, nil
}

// loadTeam returns the event and the named team registration that belongs to it.
func loadTeam(ctx context.Context, repos domain.Repositories, eventID, registrationID string, forUpdate bool) (*domain.Event, *domain.Registration, error) {
	event, err := repos.Events.GetByID(ctx, eventID)
	if err != nil {
		return nil, nil, wrapErr("get event", err)
	}
	var reg *domain.Registration
	if forUpdate {
		reg, err = repos.Registrations.GetByIDForUpdate(ctx, registrationID)
	} else {
		reg, err = repos.Registrations.GetByID(ctx, registrationID)
	}
	if err != nil {
		return nil, nil, wrapErr("get registration", err)
	}
	if reg.EventID != eventID {
		return nil, nil, domain.ErrRegistrationNotFound
	}
	if !reg.IsTeam() {
		return nil, nil, fmt.Errorf("%w: registration is not a team", domain.ErrInvalidInput)
	}
	return event, reg, nil
}

func (s *invitationService) Invite(ctx context.Context, eventID, registrationID, senderID, targetUserID string) (*domain.TeamInvite, error) {
	if targetUserID == "" || targetUserID == senderID {
		return nil, fmt.Errorf("%w: invalid invitation target", domain.ErrInvalidInput)
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var invite *domain.TeamInvite
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos domain.Repositories) error {
		event, reg, err := loadTeam(ctx, repos, eventID, registrationID, false)
		if err != nil {
			return err
		}
		if reg.UserID != senderID {
			return domain.ErrForbidden
		}

		if _, err := repos.Invitations.GetByID(ctx, domain.InviteID(eventID, targetUserID)); err == nil {
			return domain.ErrTargetAlreadyInvited
		} else if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("get invitation: %w", err)
		}
		placed, err := participation(ctx, repos, eventID, targetUserID)
		if err != nil {
			return err
		}
		if placed != nil {
			return domain.ErrTargetAlreadyRegistered
		}

		sender, err := repos.Profiles.GetByID(ctx, senderID)
		if err != nil {
			return wrapErr("get sender profile", err)
		}
		target, err := repos.Profiles.GetByID(ctx, targetUserID)
		if err != nil {
			return wrapErr("get target profile", err)
		}

		candidate := domain.NewTeamInvite(event, reg, sender, target, s.now())
		if err := repos.Invitations.Create(ctx, candidate); err != nil {
			if errors.Is(err, domain.ErrInvitationExists) {
				return domain.ErrTargetAlreadyInvited
			}
			return fmt.Errorf("create invitation: %w", err)
		}
		invite = candidate
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyCreated(ctx, invite)
	return invite, nil
}

func (s *invitationService) RequestToJoin(ctx context.Context, eventID, registrationID, requesterID string) (*domain.JoinRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var request *domain.JoinRequest
	created := false
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos domain.Repositories) error {
		created = false
		event, reg, err := loadTeam(ctx, repos, eventID, registrationID, true)
		if err != nil {
			return err
		}
		placed, err := participation(ctx, repos, eventID, requesterID)
		if err != nil {
			return err
		}
		if placed != nil {
			return domain.ErrAlreadyRegistered
		}

		existing, err := s.existingRequest(ctx, repos, domain.JoinRequestID(eventID, requesterID, reg.ID))
		if err != nil {
			return err
		}
		if existing != nil {
			request = existing
			return wrapErr("add pending request", repos.Registrations.AddPendingRequest(ctx, reg.ID, requesterID))
		}

		requester, err := repos.Profiles.GetByID(ctx, requesterID)
		if err != nil {
			return wrapErr("get requester profile", err)
		}
		candidate := domain.NewJoinRequest(event, reg, requester, s.now())
		if err := repos.Invitations.Create(ctx, candidate); err != nil {
			return wrapErr("create join request", err)
		}
		if err := repos.Registrations.AddPendingRequest(ctx, reg.ID, requesterID); err != nil {
			return fmt.Errorf("add pending request: %w", err)
		}
		request = candidate
		created = true
		return nil
	})
	if errors.Is(err, domain.ErrInvitationExists) {
		// Lost a race with an identical request; the stored one stands.
		existing, getErr := s.existingRequest(ctx, s.store.Repositories(), domain.JoinRequestID(eventID, requesterID, registrationID))
		if getErr != nil {
			return nil, getErr
		}
		if existing != nil {
			return existing, nil
		}
	}
	if err != nil {
		return nil, err
	}

	if created {
		s.notifyCreated(ctx, request)
	}
	return request, nil
}

func (s *invitationService) existingRequest(ctx context.Context, repos domain.Repositories, id string) (*domain.JoinRequest, error) {
	inv, err := repos.Invitations.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get join request: %w", err)
	}
	request, ok := inv.(*domain.JoinRequest)
	if !ok {
		return nil, fmt.Errorf("invitation %s is not a join request", id)
	}
	return request, nil
}

func (s *invitationService) Respond(ctx context.Context, invitationID, responderID string, decision domain.Decision) error {
	if decision != domain.DecisionAccept && decision != domain.DecisionReject {
		return fmt.Errorf("%w: unknown decision %q", domain.ErrInvalidInput, decision)
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var resolved domain.Invitation
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos domain.Repositories) error {
		inv, err := repos.Invitations.GetByIDForUpdate(ctx, invitationID)
		if err != nil {
			return wrapErr("get invitation", err)
		}
		env := inv.Envelope()
		if env.TargetUserID != responderID {
			return domain.ErrForbidden
		}
		if env.Status != domain.InvitationPending {
			return domain.ErrInvitationAlreadyResolved
		}

		if decision == domain.DecisionReject {
			if err := repos.Invitations.Delete(ctx, env.ID); err != nil {
				return wrapErr("delete invitation", err)
			}
			if _, ok := inv.(*domain.JoinRequest); ok {
				if err := repos.Registrations.RemovePendingRequest(ctx, env.RegistrationID, env.SenderID); err != nil {
					return fmt.Errorf("remove pending request: %w", err)
				}
			}
		} else if err := s.accept(ctx, repos, inv); err != nil {
			return err
		}
		resolved = inv
		return nil
	})
	if err != nil {
		return err
	}

	if err := s.notifier.InvitationResponded(ctx, resolved, decision); err != nil {
		s.logger.WarnContext(ctx, "invitation response notification failed",
			"invitation_id", invitationID, "decision", decision, "err", err)
	}
	return nil
}

// accept adds the invitation's new member to the team while the registration row is locked.
func (s *invitationService) accept(ctx context.Context, repos domain.Repositories, inv domain.Invitation) error {
	env := inv.Envelope()
	event, err := repos.Events.GetByID(ctx, env.EventID)
	if err != nil {
		return wrapErr("get event", err)
	}
	reg, err := repos.Registrations.GetByIDForUpdate(ctx, env.RegistrationID)
	if err != nil {
		return wrapErr("get registration", err)
	}

	var member domain.TeamMember
	switch v := inv.(type) {
	case *domain.TeamInvite:
		member = domain.TeamMember{Name: v.TargetName, RollNo: v.TargetRollNo, MemberUserID: v.TargetUserID}
	case *domain.JoinRequest:
		requester, err := repos.Profiles.GetByID(ctx, v.SenderID)
		if err != nil {
			return wrapErr("get requester profile", err)
		}
		member = domain.TeamMember{Name: requester.DisplayName, RollNo: requester.RollNo, MemberUserID: v.SenderID}
	}
	member.RollNo = strings.TrimSpace(member.RollNo)
	if member.RollNo == "" {
		return domain.ErrMissingRollNo
	}

	placed, err := participation(ctx, repos, env.EventID, member.MemberUserID)
	if err != nil {
		return err
	}
	if placed != nil {
		return domain.ErrAlreadyParticipant
	}
	if reg.TeamSize()+1 > event.MaxTeamSize {
		return domain.ErrTeamFull
	}
	taken, err := repos.Registrations.ListTakenRollNumbers(ctx, env.EventID, []string{member.RollNo})
	if err != nil {
		return fmt.Errorf("list taken roll numbers: %w", err)
	}
	if len(taken) > 0 {
		return domain.ErrDuplicateParticipant
	}

	reg.AddMember(member, event.MinTeamSize)
	if err := repos.Registrations.AddMember(ctx, reg, member); err != nil {
		return wrapErr("add team member", err)
	}
	now := s.now()
	if err := repos.Invitations.MarkAccepted(ctx, env.ID, now); err != nil {
		return wrapErr("mark invitation accepted", err)
	}
	env.Status = domain.InvitationAccepted
	env.RespondedAt = &now

	// The member is placed now; requests they left with other teams can never be accepted.
	withdrawn, err := repos.Invitations.WithdrawPendingRequests(ctx, env.EventID, member.MemberUserID)
	if err != nil {
		return fmt.Errorf("withdraw pending requests: %w", err)
	}
	for _, regID := range withdrawn {
		if err := repos.Registrations.RemovePendingRequest(ctx, regID, member.MemberUserID); err != nil {
			return fmt.Errorf("remove pending request: %w", err)
		}
	}
	return nil
}

func (s *invitationService) AvailableTeams(ctx context.Context, eventID, excludingUserID string) ([]*domain.Registration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	repos := s.store.Repositories()
	event, err := repos.Events.GetByID(ctx, eventID)
	if err != nil {
		return nil, wrapErr("get event", err)
	}
	regs, err := repos.Registrations.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	return lo.Filter(regs, func(r *domain.Registration, _ int) bool {
		return r.IsTeam() &&
			r.TeamSize() < event.MaxTeamSize &&
			len(r.PendingRequests) < event.MaxTeamSize &&
			!r.HasParticipant(excludingUserID) &&
			!r.HasPendingRequest(excludingUserID)
	}), nil
}

func (s *invitationService) PendingForTarget(ctx context.Context, userID string) ([]domain.Invitation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	invs, err := s.store.Repositories().Invitations.ListPendingByTarget(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list pending invitations: %w", err)
	}
	return invs, nil
}

func (s *invitationService) SentForTeam(ctx context.Context, eventID, leaderID string) ([]domain.Invitation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	invs, err := s.store.Repositories().Invitations.ListByRegistrationID(ctx, domain.RegistrationID(eventID, leaderID))
	if err != nil {
		return nil, fmt.Errorf("list sent invitations: %w", err)
	}
	return invs, nil
}

func (s *invitationService) notifyCreated(ctx context.Context, inv domain.Invitation) {
	if err := s.notifier.InvitationCreated(ctx, inv); err != nil {
		s.logger.WarnContext(ctx, "invitation notification failed",
			"invitation_id", inv.Envelope().ID, "err", err)
	}
}
