package helpers

import (
	"errors"
	"log/slog"
	"net/http"

	"campusevents/internal/domain"
)

type errorMapping struct {
	err    error
	status int
	code   string
}

// domainErrors is checked in order, so specific errors precede the generic ones they wrap.
var domainErrors = []errorMapping{
	{domain.ErrEventNotFound, http.StatusNotFound, ErrCodeNotFound},
	{domain.ErrRegistrationNotFound, http.StatusNotFound, ErrCodeNotFound},
	{domain.ErrInvitationNotFound, http.StatusNotFound, ErrCodeNotFound},
	{domain.ErrProfileNotFound, http.StatusNotFound, ErrCodeNotFound},
	{domain.ErrNotFound, http.StatusNotFound, ErrCodeNotFound},

	{domain.ErrInvalidInput, http.StatusBadRequest, ErrCodeBadRequest},
	{domain.ErrMissingRollNo, http.StatusBadRequest, "missing_roll_no"},
	{domain.ErrMissingMobile, http.StatusBadRequest, "missing_mobile"},

	{domain.ErrAlreadyRegistered, http.StatusConflict, "already_registered"},
	{domain.ErrDuplicateTeamName, http.StatusConflict, "duplicate_team_name"},
	{domain.ErrDuplicateParticipant, http.StatusConflict, "duplicate_participant"},
	{domain.ErrAlreadyParticipant, http.StatusConflict, "already_participant"},
	{domain.ErrTeamFull, http.StatusConflict, "team_full"},
	{domain.ErrTargetAlreadyInvited, http.StatusConflict, "target_already_invited"},
	{domain.ErrTargetAlreadyRegistered, http.StatusConflict, "target_already_registered"},
	{domain.ErrFeedbackAlreadySubmitted, http.StatusConflict, "feedback_already_submitted"},
	{domain.ErrInvitationExists, http.StatusConflict, ErrCodeConflict},
	{domain.ErrInvitationAlreadyResolved, http.StatusConflict, "invitation_already_resolved"},

	{domain.ErrForbidden, http.StatusForbidden, ErrCodeForbidden},
	{domain.ErrIncorrectCode, http.StatusForbidden, "incorrect_code"},
	{domain.ErrNotRegistered, http.StatusForbidden, "not_registered"},
	{domain.ErrAttendanceNotActive, http.StatusBadRequest, "attendance_not_active"},
	{domain.ErrAlreadyCheckedIn, http.StatusBadRequest, "already_checked_in"},
	{domain.ErrRegistrationClosed, http.StatusBadRequest, "registration_closed"},
	{domain.ErrFeedbackClosed, http.StatusBadRequest, "feedback_closed"},

	{domain.ErrTransient, http.StatusServiceUnavailable, ErrCodeUnavailable},
}

// StatusFor returns the HTTP status and error code for err. Unknown errors map to 500.
func StatusFor(err error) (int, string) {
	for _, m := range domainErrors {
		if errors.Is(err, m.err) {
			return m.status, m.code
		}
	}
	return http.StatusInternalServerError, ErrCodeInternalError
}

// WriteDomainError writes the error envelope for err. Server errors are logged and their
// message is not exposed to the client.
func WriteDomainError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	status, code := StatusFor(err)
	if status >= http.StatusInternalServerError && status != http.StatusServiceUnavailable {
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteJSONError(w, status, code, "internal server error")
		return
	}
	if status == http.StatusServiceUnavailable {
		logger.WarnContext(r.Context(), "request conflicted", "path", r.URL.Path, "method", r.Method, "err", err)
	}
	WriteJSONError(w, status, code, err.Error())
}
