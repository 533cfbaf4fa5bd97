package domain

import (
	"context"
	"time"
)

// InvitationType distinguishes the two invitation variants.
type InvitationType string

const (
	// InvitationTypeInvite is a leader offering a student a seat.
	InvitationTypeInvite InvitationType = "invite"
	// InvitationTypeRequest is a student asking a leader to join the team.
	InvitationTypeRequest InvitationType = "request"
)

// InvitationStatus is pending until answered. Rejected invitations are deleted.
type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
)

// Decision is a target's answer to an invitation.
type Decision string

const (
	DecisionAccept Decision = "accept"
	DecisionReject Decision = "reject"
)

// InvitationEnvelope holds the fields shared by both invitation variants.
type InvitationEnvelope struct {
	ID             string           `json:"id"`
	Type           InvitationType   `json:"type"`
	EventID        string           `json:"event_id"`
	EventTitle     string           `json:"event_title"`
	TeamName       string           `json:"team_name"`
	RegistrationID string           `json:"registration_id"`
	SenderID       string           `json:"sender_id"`
	SenderName     string           `json:"sender_name"`
	TargetUserID   string           `json:"target_user_id"`
	TargetName     string           `json:"target_name"`
	Status         InvitationStatus `json:"status"`
	CreatedAt      time.Time        `json:"created_at"`
	RespondedAt    *time.Time       `json:"responded_at,omitempty"`
}

// Envelope returns the shared fields. It makes every variant an Invitation.
func (e *InvitationEnvelope) Envelope() *InvitationEnvelope { return e }

// Invitation is either a *TeamInvite or a *JoinRequest.
type Invitation interface {
	Envelope() *InvitationEnvelope
	isInvitation()
}

// TeamInvite is a leader's offer to a named student. The student's roll number is
// captured when the invite is sent.
// swagger:model TeamInvite
type TeamInvite struct {
	InvitationEnvelope
	TargetRollNo string `json:"target_roll_no"`
}

func (*TeamInvite) isInvitation() {}

// JoinRequest is a student's ask to join a team; TargetUserID is the leader.
// The requester's roll number is looked up on acceptance.
// swagger:model JoinRequest
type JoinRequest struct {
	InvitationEnvelope
}

func (*JoinRequest) isInvitation() {}

// InviteID is the id of the single invite a student may hold for an event.
func InviteID(eventID, targetUserID string) string {
	return "invite_" + eventID + "_" + targetUserID
}

// JoinRequestID is the id of requesterID's request to join registrationID.
func JoinRequestID(eventID, requesterID, registrationID string) string {
	return "request_" + eventID + "_" + requesterID + "_" + registrationID
}

// NewTeamInvite builds a pending invite from the team's leader to target.
func NewTeamInvite(event *Event, reg *Registration, sender, target *UserProfile, now time.Time) *TeamInvite {
	return &TeamInvite{
		InvitationEnvelope: InvitationEnvelope{
			ID:             InviteID(event.ID, target.ID),
			Type:           InvitationTypeInvite,
			EventID:        event.ID,
			EventTitle:     event.Title,
			TeamName:       reg.TeamName,
			RegistrationID: reg.ID,
			SenderID:       sender.ID,
			SenderName:     sender.DisplayName,
			TargetUserID:   target.ID,
			TargetName:     target.DisplayName,
			Status:         InvitationPending,
			CreatedAt:      now,
		},
		TargetRollNo: target.RollNo,
	}
}

// NewJoinRequest builds a pending request from requester to the team's leader.
func NewJoinRequest(event *Event, reg *Registration, requester *UserProfile, now time.Time) *JoinRequest {
	return &JoinRequest{
		InvitationEnvelope: InvitationEnvelope{
			ID:             JoinRequestID(event.ID, requester.ID, reg.ID),
			Type:           InvitationTypeRequest,
			EventID:        event.ID,
			EventTitle:     event.Title,
			TeamName:       reg.TeamName,
			RegistrationID: reg.ID,
			SenderID:       requester.ID,
			SenderName:     requester.DisplayName,
			TargetUserID:   reg.UserID,
			TargetName:     reg.UserDetails.Name,
			Status:         InvitationPending,
			CreatedAt:      now,
		},
	}
}

// InvitationRepository defines storage operations for invitations.
type InvitationRepository interface {
	// Create stores a new invitation. Returns ErrInvitationExists when the id is taken.
	Create(ctx context.Context, inv Invitation) error
	GetByID(ctx context.Context, id string) (Invitation, error)
	// GetByIDForUpdate reads the invitation and locks its row until the surrounding transaction ends.
	GetByIDForUpdate(ctx context.Context, id string) (Invitation, error)
	MarkAccepted(ctx context.Context, id string, respondedAt time.Time) error
	Delete(ctx context.Context, id string) error
	// WithdrawPendingRequests deletes senderID's pending join requests for eventID and
	// returns the registration ids they were addressed to.
	WithdrawPendingRequests(ctx context.Context, eventID, senderID string) ([]string, error)
	ListPendingByTarget(ctx context.Context, userID string) ([]Invitation, error)
	ListByRegistrationID(ctx context.Context, registrationID string) ([]Invitation, error)
}

// InvitationNotifier is informed of invitation changes after they are committed.
type InvitationNotifier interface {
	InvitationCreated(ctx context.Context, inv Invitation) error
	InvitationResponded(ctx context.Context, inv Invitation, decision Decision) error
}

// InvitationService is the team-formation broker.
type InvitationService interface {
	SearchCandidates(ctx context.Context, term string) ([]*UserProfile, error)
	Invite(ctx context.Context, eventID, registrationID, senderID, targetUserID string) (*TeamInvite, error)
	RequestToJoin(ctx context.Context, eventID, registrationID, requesterID string) (*JoinRequest, error)
	Respond(ctx context.Context, invitationID, responderID string, decision Decision) error
	AvailableTeams(ctx context.Context, eventID, excludingUserID string) ([]*Registration, error)
	PendingForTarget(ctx context.Context, userID string) ([]Invitation, error)
	SentForTeam(ctx context.Context, eventID, leaderID string) ([]Invitation, error)
}
