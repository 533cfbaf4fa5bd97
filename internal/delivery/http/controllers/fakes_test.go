package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"campusevents/internal/delivery/http/helpers"
	"campusevents/internal/delivery/http/middleware"
	"campusevents/internal/domain"
)

const (
	testEventID = "0b6f1d8e-3c55-4a5c-8d3f-6f2b9a1c7e42"
	testUserID  = "5b0f6d3e-8a55-4f3c-9d6c-1c1b7f1f2a10"
	otherUserID = "9e2d4c1a-7b3f-4e8d-a6c5-2f1e0d9c8b7a"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

// newRequest builds a request authenticated as userID (unless empty) with the given path values.
func newRequest(method, target, body, userID string, pathValues map[string]string) *http.Request {
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rdr)
	for k, v := range pathValues {
		req.SetPathValue(k, v)
	}
	if userID != "" {
		req = req.WithContext(middleware.SetUserID(req.Context(), userID))
	}
	return req
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder, data any) *helpers.APIError {
	t.Helper()
	var raw struct {
		Data  json.RawMessage   `json:"data"`
		Error *helpers.APIError `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&raw))
	if data != nil && raw.Error == nil {
		require.NoError(t, json.Unmarshal(raw.Data, data))
	}
	return raw.Error
}

type fakeRegistrationService struct {
	reg     *domain.Registration
	regs    []*domain.Registration
	err     error
	gotTeam *domain.TeamDetails
	gotUser string
}

func (f *fakeRegistrationService) Register(_ context.Context, eventID, userID string, team *domain.TeamDetails) (*domain.Registration, error) {
	f.gotTeam, f.gotUser = team, userID
	if f.err != nil {
		return nil, f.err
	}
	return f.reg, nil
}

func (f *fakeRegistrationService) FindForParticipant(_ context.Context, _, userID string) (*domain.Registration, error) {
	f.gotUser = userID
	if f.err != nil {
		return nil, f.err
	}
	return f.reg, nil
}

func (f *fakeRegistrationService) ListForEvent(context.Context, string) ([]*domain.Registration, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.regs, nil
}

type fakeInvitationService struct {
	err         error
	profiles    []*domain.UserProfile
	invite      *domain.TeamInvite
	request     *domain.JoinRequest
	teams       []*domain.Registration
	invitations []domain.Invitation

	gotTerm     string
	gotRegID    string
	gotSender   string
	gotTarget   string
	gotDecision domain.Decision
}

func (f *fakeInvitationService) SearchCandidates(_ context.Context, term string) ([]*domain.UserProfile, error) {
	f.gotTerm = term
	return f.profiles, f.err
}

func (f *fakeInvitationService) Invite(_ context.Context, _, registrationID, senderID, targetUserID string) (*domain.TeamInvite, error) {
	f.gotRegID, f.gotSender, f.gotTarget = registrationID, senderID, targetUserID
	if f.err != nil {
		return nil, f.err
	}
	return f.invite, nil
}

func (f *fakeInvitationService) RequestToJoin(_ context.Context, _, registrationID, requesterID string) (*domain.JoinRequest, error) {
	f.gotRegID, f.gotSender = registrationID, requesterID
	if f.err != nil {
		return nil, f.err
	}
	return f.request, nil
}

func (f *fakeInvitationService) Respond(_ context.Context, _, responderID string, decision domain.Decision) error {
	f.gotSender, f.gotDecision = responderID, decision
	return f.err
}

func (f *fakeInvitationService) AvailableTeams(_ context.Context, _, excludingUserID string) ([]*domain.Registration, error) {
	f.gotSender = excludingUserID
	return f.teams, f.err
}

func (f *fakeInvitationService) PendingForTarget(_ context.Context, userID string) ([]domain.Invitation, error) {
	f.gotTarget = userID
	return f.invitations, f.err
}

func (f *fakeInvitationService) SentForTeam(_ context.Context, _, leaderID string) ([]domain.Invitation, error) {
	f.gotSender = leaderID
	return f.invitations, f.err
}

type fakeCheckInService struct {
	err     error
	calls   int
	gotUser string
	gotCode string
}

func (f *fakeCheckInService) CheckIn(_ context.Context, _, userID, code string) error {
	f.calls++
	f.gotUser, f.gotCode = userID, code
	return f.err
}

type fakeFeedbackService struct {
	err error
	got *domain.Feedback
}

func (f *fakeFeedbackService) Submit(_ context.Context, fb *domain.Feedback) error {
	f.got = fb
	if f.err != nil {
		return f.err
	}
	fb.ID = "fb-1"
	return nil
}
