package controllers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"campusevents/internal/delivery/http/helpers"
	"campusevents/internal/domain"
)

// CheckInRequest is the request body for POST /checkin. user_id is optional and, when sent,
// must be the caller. An event_id that is not a UUID names no event and reads as not found.
type CheckInRequest struct {
	EventID string `json:"event_id" validate:"required"`
	UserID  string `json:"user_id" validate:"omitempty,uuid"`
	Code    string `json:"code" validate:"required"`
}

// CheckInResponse is the body returned after a successful check-in.
type CheckInResponse struct {
	Success bool `json:"success"`
}

// CheckInSuccessResponse is the success response envelope for POST /checkin (200).
type CheckInSuccessResponse struct {
	Data  CheckInResponse   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type CheckInController struct {
	Logger  *slog.Logger
	Service domain.CheckInService
}

func NewCheckInController(logger *slog.Logger, svc domain.CheckInService) *CheckInController {
	return &CheckInController{
		Logger:  logger,
		Service: svc,
	}
}

// CheckIn godoc
// @Summary Check in to an event
// @Description Validates the event's attendance code and records the caller's presence once.
// @Tags checkin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CheckInRequest true "Event and attendance code"
// @Success 200 {object} controllers.CheckInSuccessResponse "data.success: true"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request, attendance_not_active, already_checked_in"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: incorrect_code, not_registered, forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /checkin [post]
func (c *CheckInController) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req CheckInRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	if req.UserID != "" && req.UserID != userID {
		helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "cannot check in another user")
		return
	}
	if uuid.Validate(req.EventID) != nil {
		helpers.WriteDomainError(w, r, c.Logger, domain.ErrEventNotFound)
		return
	}
	if err := c.Service.CheckIn(r.Context(), req.EventID, userID, req.Code); err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, CheckInResponse{Success: true})
}
