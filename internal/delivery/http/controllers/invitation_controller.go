package controllers

import (
	"log/slog"
	"net/http"

	"campusevents/internal/delivery/http/helpers"
	"campusevents/internal/domain"
)

// InviteRequest is the request body for POST /events/{eventID}/invitations.
type InviteRequest struct {
	TargetUserID string `json:"target_user_id" validate:"required,uuid"`
}

// TeamInviteSuccessResponse is the success response envelope for a created invite.
type TeamInviteSuccessResponse struct {
	Data  *domain.TeamInvite `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// JoinRequestSuccessResponse is the success response envelope for a join request.
type JoinRequestSuccessResponse struct {
	Data  *domain.JoinRequest `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// InvitationListSuccessResponse wraps a list of invites and join requests. Items carry a type field.
type InvitationListSuccessResponse struct {
	Data  []domain.InvitationEnvelope `json:"data"`
	Error *helpers.APIError           `json:"error"`
}

// CandidateListSuccessResponse is the success response envelope for GET /candidates.
type CandidateListSuccessResponse struct {
	Data  []*domain.UserProfile `json:"data"`
	Error *helpers.APIError     `json:"error"`
}

// TeamListSuccessResponse is the success response envelope for GET /events/{eventID}/teams/available.
type TeamListSuccessResponse struct {
	Data  []*domain.Registration `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

// RespondResponse is the body returned after accepting or rejecting an invitation.
type RespondResponse struct {
	Status string `json:"status"`
}

// RespondSuccessResponse is the success response envelope for accept and reject.
type RespondSuccessResponse struct {
	Data  RespondResponse   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type InvitationController struct {
	Logger  *slog.Logger
	Service domain.InvitationService
}

func NewInvitationController(logger *slog.Logger, svc domain.InvitationService) *InvitationController {
	return &InvitationController{
		Logger:  logger,
		Service: svc,
	}
}

// SearchCandidates godoc
// @Summary Search students to invite
// @Description Case-insensitive match on name or roll number. Terms shorter than 2 characters return an empty list; at most 20 results.
// @Tags invitations
// @Produce json
// @Security BearerAuth
// @Param q query string true "Search term"
// @Success 200 {object} controllers.CandidateListSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /candidates [get]
func (c *InvitationController) SearchCandidates(w http.ResponseWriter, r *http.Request) {
	if _, ok := callerID(w, r); !ok {
		return
	}
	profiles, err := c.Service.SearchCandidates(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, profiles)
}

// Invite godoc
// @Summary Invite a student to the caller's team
// @Description The caller must lead a team registration for the event. A student holds at most one invite per event.
// @Tags invitations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param body body InviteRequest true "Student to invite"
// @Success 201 {object} controllers.TeamInviteSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not the leader)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: target_already_invited, target_already_registered"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/invitations [post]
func (c *InvitationController) Invite(w http.ResponseWriter, r *http.Request) {
	eventID, ok := eventIDParam(w, r)
	if !ok {
		return
	}
	var req InviteRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	senderID, ok := callerID(w, r)
	if !ok {
		return
	}
	invite, err := c.Service.Invite(r.Context(), eventID, domain.RegistrationID(eventID, senderID), senderID, req.TargetUserID)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, invite)
}

// RequestToJoin godoc
// @Summary Ask to join a team
// @Description Creates a join request addressed to the team's leader. Repeating the request returns the existing one.
// @Tags invitations
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param registrationID path string true "Team registration ID"
// @Success 201 {object} controllers.JoinRequestSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: already_registered"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/teams/{registrationID}/requests [post]
func (c *InvitationController) RequestToJoin(w http.ResponseWriter, r *http.Request) {
	eventID, ok := eventIDParam(w, r)
	if !ok {
		return
	}
	registrationID, ok := pathParam(w, r, "registrationID")
	if !ok {
		return
	}
	requesterID, ok := callerID(w, r)
	if !ok {
		return
	}
	req, err := c.Service.RequestToJoin(r.Context(), eventID, registrationID, requesterID)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, req)
}

// Accept godoc
// @Summary Accept an invitation or join request
// @Description Only the invitation's target may answer. Adds the member to the team when capacity allows.
// @Tags invitations
// @Produce json
// @Security BearerAuth
// @Param invitationID path string true "Invitation ID"
// @Success 200 {object} controllers.RespondSuccessResponse "data.status: accepted"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: team_full, already_participant, duplicate_participant, invitation_already_resolved"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /invitations/{invitationID}/accept [post]
func (c *InvitationController) Accept(w http.ResponseWriter, r *http.Request) {
	c.respond(w, r, domain.DecisionAccept, "accepted")
}

// Reject godoc
// @Summary Reject an invitation or join request
// @Description Only the invitation's target may answer. The invitation is deleted.
// @Tags invitations
// @Produce json
// @Security BearerAuth
// @Param invitationID path string true "Invitation ID"
// @Success 200 {object} controllers.RespondSuccessResponse "data.status: rejected"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: invitation_already_resolved"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /invitations/{invitationID}/reject [post]
func (c *InvitationController) Reject(w http.ResponseWriter, r *http.Request) {
	c.respond(w, r, domain.DecisionReject, "rejected")
}

func (c *InvitationController) respond(w http.ResponseWriter, r *http.Request, decision domain.Decision, status string) {
	invitationID, ok := pathParam(w, r, "invitationID")
	if !ok {
		return
	}
	responderID, ok := callerID(w, r)
	if !ok {
		return
	}
	if err := c.Service.Respond(r.Context(), invitationID, responderID, decision); err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, RespondResponse{Status: status})
}

// AvailableTeams godoc
// @Summary List teams the caller can ask to join
// @Description Teams that are not full, have fewer pending requests than the maximum team size, and do not already include the caller.
// @Tags invitations
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} controllers.TeamListSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/teams/available [get]
func (c *InvitationController) AvailableTeams(w http.ResponseWriter, r *http.Request) {
	eventID, ok := eventIDParam(w, r)
	if !ok {
		return
	}
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	teams, err := c.Service.AvailableTeams(r.Context(), eventID, userID)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, teams)
}

// PendingForTarget godoc
// @Summary List pending invitations addressed to the caller
// @Description Invites the caller received and join requests to teams the caller leads, newest first.
// @Tags invitations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.InvitationListSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /invitations/pending [get]
func (c *InvitationController) PendingForTarget(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	invs, err := c.Service.PendingForTarget(r.Context(), userID)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, invs)
}

// SentForTeam godoc
// @Summary List invitations of the caller's team
// @Description Invites sent by the caller and join requests received, for the team the caller leads.
// @Tags invitations
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} controllers.InvitationListSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/invitations/sent [get]
func (c *InvitationController) SentForTeam(w http.ResponseWriter, r *http.Request) {
	eventID, ok := eventIDParam(w, r)
	if !ok {
		return
	}
	leaderID, ok := callerID(w, r)
	if !ok {
		return
	}
	invs, err := c.Service.SentForTeam(r.Context(), eventID, leaderID)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, invs)
}
