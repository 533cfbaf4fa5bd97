package domain

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/samber/lo"
)

// RegistrationStatus is the lifecycle state of a registration.
// It only moves forward: forming -> registered -> attended.
type RegistrationStatus string

const (
	StatusForming    RegistrationStatus = "forming"
	StatusRegistered RegistrationStatus = "registered"
	StatusAttended   RegistrationStatus = "attended"
)

func (s RegistrationStatus) rank() int {
	switch s {
	case StatusForming:
		return 0
	case StatusRegistered:
		return 1
	case StatusAttended:
		return 2
	}
	return -1
}

// UserDetails is the leader's profile snapshot captured at registration time.
// Later profile edits are not reflected here.
type UserDetails struct {
	Name    string `json:"name"`
	RollNo  string `json:"roll_no"`
	Class   string `json:"class"`
	Section string `json:"section"`
	Mobile  string `json:"mobile"`
}

// TeamMember is an accepted (or directly supplied) member of a team registration.
type TeamMember struct {
	Name         string `json:"name" validate:"required"`
	RollNo       string `json:"roll_no" validate:"required"`
	MemberUserID string `json:"member_user_id,omitempty"`
}

// TeamDetails is the optional team part of a registration request.
type TeamDetails struct {
	Name    string       `json:"team_name" validate:"required"`
	Members []TeamMember `json:"members" validate:"dive"`
}

// Registration records an individual's or a team's participation in one event.
// swagger:model Registration
type Registration struct {
	ID                string             `json:"id"`
	EventID           string             `json:"event_id"`
	UserID            string             `json:"user_id"`
	UserDetails       UserDetails        `json:"user_details"`
	Status            RegistrationStatus `json:"status"`
	TeamName          string             `json:"team_name,omitempty"`
	TeamMembers       []TeamMember       `json:"team_members"`
	ParticipantIDs    []string           `json:"participant_ids"`
	PendingRequests   []string           `json:"pending_requests"`
	Attendance        map[string]bool    `json:"attendance"`
	FeedbackSubmitted bool               `json:"feedback_submitted"`
	FeedbackMap       map[string]bool    `json:"feedback_map"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

// RegistrationID returns the identifier of the registration led by userID for eventID.
func RegistrationID(eventID, userID string) string {
	return eventID + "_" + userID
}

// TeamNameKey normalizes a team name for uniqueness comparisons.
func TeamNameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// StatusForSize returns forming while the team is below minTeamSize, registered otherwise.
func StatusForSize(teamSize, minTeamSize int) RegistrationStatus {
	if teamSize < minTeamSize {
		return StatusForming
	}
	return StatusRegistered
}

// NewRegistration builds a registration for leaderID with an optional team.
// Directly supplied members that carry a user id become participants.
func NewRegistration(event *Event, leaderID string, details UserDetails, team *TeamDetails, now time.Time) *Registration {
	reg := &Registration{
		ID:              RegistrationID(event.ID, leaderID),
		EventID:         event.ID,
		UserID:          leaderID,
		UserDetails:     details,
		TeamMembers:     []TeamMember{},
		ParticipantIDs:  []string{leaderID},
		PendingRequests: []string{},
		Attendance:      map[string]bool{},
		FeedbackMap:     map[string]bool{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if team != nil {
		reg.TeamName = strings.TrimSpace(team.Name)
		for _, m := range team.Members {
			m.RollNo = strings.TrimSpace(m.RollNo)
			reg.TeamMembers = append(reg.TeamMembers, m)
			if m.MemberUserID != "" {
				reg.ParticipantIDs = append(reg.ParticipantIDs, m.MemberUserID)
			}
		}
	}
	reg.Status = StatusForSize(reg.TeamSize(), event.MinTeamSize)
	return reg
}

// IsTeam reports whether the registration is a named team.
func (r *Registration) IsTeam() bool {
	return r.TeamName != ""
}

// TeamSize counts the leader plus members.
func (r *Registration) TeamSize() int {
	return 1 + len(r.TeamMembers)
}

// RollNumbers returns the leader's and every member's roll number.
func (r *Registration) RollNumbers() []string {
	return append([]string{r.UserDetails.RollNo}, lo.Map(r.TeamMembers, func(m TeamMember, _ int) string {
		return m.RollNo
	})...)
}

// HasParticipant reports whether userID is the leader or an accepted member.
func (r *Registration) HasParticipant(userID string) bool {
	return lo.Contains(r.ParticipantIDs, userID)
}

// HasPendingRequest reports whether userID is waiting for the leader's answer.
func (r *Registration) HasPendingRequest(userID string) bool {
	return lo.Contains(r.PendingRequests, userID)
}

// IsAttended reports whether userID has checked in. The attendance map is authoritative;
// the legacy status field only counts for individual registrations.
func (r *Registration) IsAttended(userID string) bool {
	if r.Attendance[userID] {
		return true
	}
	return !r.IsTeam() && r.Status == StatusAttended
}

// EffectiveStatus is the status as seen by readers: attended once the leader has checked in.
func (r *Registration) EffectiveStatus() RegistrationStatus {
	if r.IsAttended(r.UserID) {
		return StatusAttended
	}
	return r.Status
}

// MarshalJSON emits EffectiveStatus so readers never see a checked-in team as registered.
func (r *Registration) MarshalJSON() ([]byte, error) {
	type plain Registration
	out := plain(*r)
	out.Status = r.EffectiveStatus()
	return json.Marshal(out)
}

// AdvanceStatus moves the status to next unless that would go backwards.
func (r *Registration) AdvanceStatus(next RegistrationStatus) {
	if next.rank() > r.Status.rank() {
		r.Status = next
	}
}

// AddMember appends an accepted member, drops any pending request from them and
// recomputes the status against minTeamSize.
func (r *Registration) AddMember(member TeamMember, minTeamSize int) {
	r.TeamMembers = append(r.TeamMembers, member)
	if !r.HasParticipant(member.MemberUserID) {
		r.ParticipantIDs = append(r.ParticipantIDs, member.MemberUserID)
	}
	r.PendingRequests = lo.Without(r.PendingRequests, member.MemberUserID)
	r.AdvanceStatus(StatusForSize(r.TeamSize(), minTeamSize))
}

// RegistrationRepository defines storage operations for registrations.
type RegistrationRepository interface {
	Create(ctx context.Context, reg *Registration) error
	GetByID(ctx context.Context, id string) (*Registration, error)
	// GetByIDForUpdate reads the registration and locks its row until the surrounding transaction ends.
	GetByIDForUpdate(ctx context.Context, id string) (*Registration, error)
	// FindByParticipant returns the registration of eventID that lists userID as a participant.
	FindByParticipant(ctx context.Context, eventID, userID string) (*Registration, error)
	ListByEventID(ctx context.Context, eventID string) ([]*Registration, error)
	TeamNameExists(ctx context.Context, eventID, teamNameKey string) (bool, error)
	// ListTakenRollNumbers returns the subset of rollNos already used in eventID.
	ListTakenRollNumbers(ctx context.Context, eventID string, rollNos []string) ([]string, error)
	// AddMember persists a member appended by Registration.AddMember, including its status.
	AddMember(ctx context.Context, reg *Registration, member TeamMember) error
	// AddPendingRequest adds userID to the pending set; adding an existing id is a no-op.
	AddPendingRequest(ctx context.Context, regID, userID string) error
	RemovePendingRequest(ctx context.Context, regID, userID string) error
	MarkAttendance(ctx context.Context, regID, userID string, status RegistrationStatus) error
	MarkFeedbackSubmitted(ctx context.Context, regID, userID string) error
}

// RegistrationService is the registration store: creation and lookup of registrations.
type RegistrationService interface {
	Register(ctx context.Context, eventID, userID string, team *TeamDetails) (*Registration, error)
	FindForParticipant(ctx context.Context, eventID, userID string) (*Registration, error)
	ListForEvent(ctx context.Context, eventID string) ([]*Registration, error)
}
