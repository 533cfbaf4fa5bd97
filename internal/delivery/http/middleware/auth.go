package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	h "campusevents/internal/delivery/http/helpers"
	"campusevents/internal/domain"
)

type contextKey string

const userIDKey contextKey = "userID"

var (
	errNoCredentials  = errors.New("missing authorization header")
	errNotBearer      = errors.New("invalid authorization format")
	errEmptyToken     = errors.New("missing token")
	errSubjectNotUUID = errors.New("token subject is not a user id")
)

// SetUserID returns a context carrying the caller's profile id.
func SetUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the caller's profile id, if RequireAuth ran.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

// RequireAuth admits requests whose bearer token verifies and names a profile id (a UUID).
// Everything else gets 401 and next is not called.
func RequireAuth(verifier domain.TokenVerifier, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			userID, err := authenticate(verifier, r.Header.Get("Authorization"))
			if err != nil {
				logger.DebugContext(r.Context(), "request not authenticated", "path", r.URL.Path, "err", err)
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, unauthorizedMessage(err))
				return
			}
			next(w, r.WithContext(SetUserID(r.Context(), userID)))
		}
	}
}

func authenticate(verifier domain.TokenVerifier, header string) (string, error) {
	if header == "" {
		return "", errNoCredentials
	}
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return "", errNotBearer
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", errEmptyToken
	}
	userID, err := verifier.Verify(token)
	if err != nil {
		return "", err
	}
	if uuid.Validate(userID) != nil {
		return "", errSubjectNotUUID
	}
	return userID, nil
}

// unauthorizedMessage keeps verifier internals out of the response body.
func unauthorizedMessage(err error) string {
	switch {
	case errors.Is(err, errNoCredentials), errors.Is(err, errNotBearer), errors.Is(err, errEmptyToken):
		return err.Error()
	case errors.Is(err, errSubjectNotUUID):
		return "token does not identify a user"
	default:
		return "invalid or expired token"
	}
}
