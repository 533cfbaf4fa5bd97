package domain

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
)

// Generic sentinel errors shared across services.
var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidInput = errors.New("invalid input")

	// ErrTransient is returned when the store gave up retrying a conflicting transaction.
	// Callers may safely re-issue the request.
	ErrTransient = errors.New("transient storage conflict, retry the request")
)

// Not found errors. Each wraps ErrNotFound so errors.Is(err, ErrNotFound) holds.
var (
	ErrEventNotFound        = fmt.Errorf("event %w", ErrNotFound)
	ErrRegistrationNotFound = fmt.Errorf("registration %w", ErrNotFound)
	ErrInvitationNotFound   = fmt.Errorf("invitation %w", ErrNotFound)
	ErrProfileNotFound      = fmt.Errorf("profile %w", ErrNotFound)
)

// Validation errors.
var (
	ErrMissingRollNo = errors.New("roll number is required")
	ErrMissingMobile = errors.New("mobile number is required")
)

// Conflict errors.
var (
	ErrAlreadyRegistered        = errors.New("already registered for this event")
	ErrDuplicateTeamName        = errors.New("team name already taken for this event")
	ErrDuplicateParticipant     = errors.New("roll number already registered for this event")
	ErrAlreadyParticipant       = errors.New("user already participates in another registration for this event")
	ErrTeamFull                 = errors.New("team is full")
	ErrAlreadyCheckedIn         = errors.New("already checked in")
	ErrTargetAlreadyInvited     = errors.New("student already holds an invitation or a seat for this event")
	ErrTargetAlreadyRegistered  = errors.New("student is already registered for this event")
	ErrFeedbackAlreadySubmitted = errors.New("feedback already submitted")
	ErrInvitationExists         = errors.New("invitation already exists")
)

// Authorization and state errors.
var (
	ErrIncorrectCode             = errors.New("incorrect attendance code")
	ErrNotRegistered             = errors.New("not registered for this event")
	ErrRegistrationClosed        = errors.New("registration is closed for this event")
	ErrAttendanceNotActive       = errors.New("attendance is not active for this event")
	ErrInvitationAlreadyResolved = errors.New("invitation already resolved")
	ErrFeedbackClosed            = errors.New("feedback is closed for this event")
)

var businessErrors = []error{
	ErrNotFound, ErrForbidden, ErrInvalidInput,
	ErrMissingRollNo, ErrMissingMobile,
	ErrAlreadyRegistered, ErrDuplicateTeamName, ErrDuplicateParticipant, ErrAlreadyParticipant,
	ErrTeamFull, ErrAlreadyCheckedIn, ErrTargetAlreadyInvited, ErrTargetAlreadyRegistered,
	ErrFeedbackAlreadySubmitted, ErrInvitationExists,
	ErrIncorrectCode, ErrNotRegistered, ErrRegistrationClosed, ErrAttendanceNotActive,
	ErrInvitationAlreadyResolved, ErrFeedbackClosed,
}

// IsBusinessError reports whether err is (or wraps) one of the sentinel errors above.
func IsBusinessError(err error) bool {
	return lo.ContainsBy(businessErrors, func(target error) bool {
		return errors.Is(err, target)
	})
}
