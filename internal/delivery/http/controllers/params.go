package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"campusevents/internal/delivery/http/helpers"
	"campusevents/internal/delivery/http/middleware"
)

// callerID returns the authenticated user id or writes 401.
func callerID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok || userID == "" {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return "", false
	}
	return userID, true
}

// eventIDParam returns the {eventID} path value or writes 400 when it is not a UUID.
func eventIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return "", false
	}
	if err := uuid.Validate(eventID); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "eventID must be a UUID")
		return "", false
	}
	return eventID, true
}

// pathParam returns a required non-UUID path value such as a composite registration id.
func pathParam(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	v := r.PathValue(name)
	if v == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing "+name)
		return "", false
	}
	return v, true
}
