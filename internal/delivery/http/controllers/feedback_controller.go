package controllers

import (
	"log/slog"
	"net/http"

	"campusevents/internal/delivery/http/helpers"
	"campusevents/internal/domain"
)

// SubmitFeedbackRequest is the request body for POST /events/{eventID}/feedback.
type SubmitFeedbackRequest struct {
	OverallRating int            `json:"overall_rating" validate:"min=1,max=5"`
	MatrixRatings map[string]int `json:"matrix_ratings" validate:"omitempty,dive,keys,required,endkeys,min=1,max=5"`
	Opinion       string         `json:"opinion" validate:"max=4000"`
}

// FeedbackSuccessResponse is the success response envelope for POST /events/{eventID}/feedback (201).
type FeedbackSuccessResponse struct {
	Data  *domain.Feedback  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type FeedbackController struct {
	Logger  *slog.Logger
	Service domain.FeedbackService
}

func NewFeedbackController(logger *slog.Logger, svc domain.FeedbackService) *FeedbackController {
	return &FeedbackController{
		Logger:  logger,
		Service: svc,
	}
}

// Submit godoc
// @Summary Submit feedback for an event
// @Description Records one rating per participant while feedback is open and updates the event's average rating.
// @Tags feedback
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param body body SubmitFeedbackRequest true "Ratings (1-5) and opinion"
// @Success 201 {object} controllers.FeedbackSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request, feedback_closed"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: not_registered"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: feedback_already_submitted"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/feedback [post]
func (c *FeedbackController) Submit(w http.ResponseWriter, r *http.Request) {
	eventID, ok := eventIDParam(w, r)
	if !ok {
		return
	}
	var req SubmitFeedbackRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	fb := &domain.Feedback{
		EventID:       eventID,
		UserID:        userID,
		OverallRating: req.OverallRating,
		MatrixRatings: req.MatrixRatings,
		Opinion:       req.Opinion,
	}
	if err := c.Service.Submit(r.Context(), fb); err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, fb)
}
