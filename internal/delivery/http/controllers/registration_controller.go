package controllers

import (
	"log/slog"
	"net/http"

	"campusevents/internal/delivery/http/helpers"
	"campusevents/internal/domain"
)

// RegisterRequest is the request body for POST /events/{eventID}/registrations.
// Omit team (send {}) for an individual registration.
type RegisterRequest struct {
	Team *domain.TeamDetails `json:"team"`
}

// RegistrationSuccessResponse is the success response envelope for a single registration.
type RegistrationSuccessResponse struct {
	Data  *domain.Registration `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// ListRegistrationsResponse is a page of registrations for an event.
type ListRegistrationsResponse struct {
	Items      []*domain.Registration `json:"items"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// ListRegistrationsSuccessResponse is the success response envelope for GET /events/{eventID}/registrations (200).
type ListRegistrationsSuccessResponse struct {
	Data  ListRegistrationsResponse `json:"data"`
	Error *helpers.APIError         `json:"error"`
}

type RegistrationController struct {
	Logger  *slog.Logger
	Service domain.RegistrationService
}

func NewRegistrationController(logger *slog.Logger, svc domain.RegistrationService) *RegistrationController {
	return &RegistrationController{
		Logger:  logger,
		Service: svc,
	}
}

// Register godoc
// @Summary Register for an event
// @Description Registers the caller for the event, individually or as the leader of a team. The caller's profile (roll number, mobile) is snapshotted. A team below the event's minimum size starts in the forming status.
// @Tags registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param body body RegisterRequest true "Optional team details"
// @Success 201 {object} controllers.RegistrationSuccessResponse "data contains the registration"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request, missing_roll_no, missing_mobile, registration_closed"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: already_registered, duplicate_team_name, duplicate_participant, team_full"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/registrations [post]
func (c *RegistrationController) Register(w http.ResponseWriter, r *http.Request) {
	eventID, ok := eventIDParam(w, r)
	if !ok {
		return
	}
	var req RegisterRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	reg, err := c.Service.Register(r.Context(), eventID, userID, req.Team)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, reg)
}

// GetMine godoc
// @Summary Get the caller's registration
// @Description Returns the registration the caller leads or is an accepted member of.
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} controllers.RegistrationSuccessResponse "data contains the registration"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/registrations/me [get]
func (c *RegistrationController) GetMine(w http.ResponseWriter, r *http.Request) {
	eventID, ok := eventIDParam(w, r)
	if !ok {
		return
	}
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	reg, err := c.Service.FindForParticipant(r.Context(), eventID, userID)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, reg)
}

// ListForEvent godoc
// @Summary List registrations for an event
// @Description Returns the event's registrations in creation order, paginated.
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.ListRegistrationsSuccessResponse "data contains items and pagination"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/registrations [get]
func (c *RegistrationController) ListForEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := eventIDParam(w, r)
	if !ok {
		return
	}
	if _, ok := callerID(w, r); !ok {
		return
	}
	regs, err := c.Service.ListForEvent(r.Context(), eventID)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	items, meta := helpers.Paginate(regs, helpers.ParsePagination(r))
	helpers.WriteJSONSuccess(w, http.StatusOK, ListRegistrationsResponse{Items: items, Pagination: meta})
}
