package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"campusevents/internal/delivery/http/controllers"
	"campusevents/internal/delivery/http/middleware"
	"campusevents/internal/domain"
)

// Controllers groups the handlers mounted by NewRouter.
type Controllers struct {
	Registrations *controllers.RegistrationController
	Invitations   *controllers.InvitationController
	CheckIn       *controllers.CheckInController
	Feedback      *controllers.FeedbackController
	Health        *controllers.HealthController
}

// NewRouter initializes the HTTP router with all application routes.
// Every route except /health and /swagger/ requires a bearer token.
func NewRouter(logger *slog.Logger, verifier domain.TokenVerifier, c Controllers) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier, logger)

	// Registrations
	mux.HandleFunc("POST /events/{eventID}/registrations", auth(c.Registrations.Register))
	mux.HandleFunc("GET /events/{eventID}/registrations", auth(c.Registrations.ListForEvent))
	mux.HandleFunc("GET /events/{eventID}/registrations/me", auth(c.Registrations.GetMine))

	// Team formation
	mux.HandleFunc("GET /candidates", auth(c.Invitations.SearchCandidates))
	mux.HandleFunc("GET /events/{eventID}/teams/available", auth(c.Invitations.AvailableTeams))
	mux.HandleFunc("POST /events/{eventID}/teams/{registrationID}/requests", auth(c.Invitations.RequestToJoin))
	mux.HandleFunc("POST /events/{eventID}/invitations", auth(c.Invitations.Invite))
	mux.HandleFunc("GET /events/{eventID}/invitations/sent", auth(c.Invitations.SentForTeam))
	mux.HandleFunc("GET /invitations/pending", auth(c.Invitations.PendingForTarget))
	mux.HandleFunc("POST /invitations/{invitationID}/accept", auth(c.Invitations.Accept))
	mux.HandleFunc("POST /invitations/{invitationID}/reject", auth(c.Invitations.Reject))

	// Attendance and feedback
	mux.HandleFunc("POST /checkin", auth(c.CheckIn.CheckIn))
	mux.HandleFunc("POST /events/{eventID}/feedback", auth(c.Feedback.Submit))

	mux.HandleFunc("GET /health", c.Health.Health)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
