package services

import (
	"context"
	"io"
	"log/slog"
	"maps"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"campusevents/internal/domain"
)

// memState is the data behind memStore. Values handed out are always copies.
type memState struct {
	events        map[string]*domain.Event
	registrations map[string]*domain.Registration
	invitations   map[string]domain.Invitation
	feedback      map[string]*domain.Feedback
	profiles      map[string]*domain.UserProfile
}

func (s *memState) clone() *memState {
	c := &memState{
		events:        make(map[string]*domain.Event, len(s.events)),
		registrations: make(map[string]*domain.Registration, len(s.registrations)),
		invitations:   make(map[string]domain.Invitation, len(s.invitations)),
		feedback:      make(map[string]*domain.Feedback, len(s.feedback)),
		profiles:      make(map[string]*domain.UserProfile, len(s.profiles)),
	}
	for k, v := range s.events {
		e := *v
		c.events[k] = &e
	}
	for k, v := range s.registrations {
		c.registrations[k] = cloneRegistration(v)
	}
	for k, v := range s.invitations {
		c.invitations[k] = cloneInvitation(v)
	}
	for k, v := range s.feedback {
		fb := *v
		c.feedback[k] = &fb
	}
	for k, v := range s.profiles {
		p := *v
		c.profiles[k] = &p
	}
	return c
}

func cloneRegistration(r *domain.Registration) *domain.Registration {
	c := *r
	c.TeamMembers = slices.Clone(r.TeamMembers)
	c.ParticipantIDs = slices.Clone(r.ParticipantIDs)
	c.PendingRequests = slices.Clone(r.PendingRequests)
	c.Attendance = maps.Clone(r.Attendance)
	c.FeedbackMap = maps.Clone(r.FeedbackMap)
	if c.Attendance == nil {
		c.Attendance = map[string]bool{}
	}
	if c.FeedbackMap == nil {
		c.FeedbackMap = map[string]bool{}
	}
	return &c
}

func cloneInvitation(inv domain.Invitation) domain.Invitation {
	switch v := inv.(type) {
	case *domain.TeamInvite:
		c := *v
		return &c
	case *domain.JoinRequest:
		c := *v
		return &c
	}
	return inv
}

// memStore is an in-memory domain.Store. WithinTx holds one global lock and restores the
// previous state when fn fails, which makes every transaction serializable.
type memStore struct {
	mu      sync.Mutex
	state   *memState
	txCount int
}

func newMemStore() *memStore {
	return &memStore{state: &memState{
		events:        map[string]*domain.Event{},
		registrations: map[string]*domain.Registration{},
		invitations:   map[string]domain.Invitation{},
		feedback:      map[string]*domain.Feedback{},
		profiles:      map[string]*domain.UserProfile{},
	}}
}

func (s *memStore) repos(inTx bool) domain.Repositories {
	r := &memRepos{store: s, inTx: inTx}
	return domain.Repositories{
		Events:        (*memEvents)(r),
		Registrations: (*memRegistrations)(r),
		Invitations:   (*memInvitations)(r),
		Feedback:      (*memFeedback)(r),
		Profiles:      (*memProfiles)(r),
	}
}

func (s *memStore) Repositories() domain.Repositories {
	return s.repos(false)
}

func (s *memStore) WithinTx(ctx context.Context, fn func(ctx context.Context, repos domain.Repositories) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.txCount++
	snapshot := s.state.clone()
	if err := fn(ctx, s.repos(true)); err != nil {
		s.state = snapshot
		return err
	}
	return nil
}

// Seeding and inspection helpers; not for use inside WithinTx.

func (s *memStore) addEvent(e *domain.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *e
	s.state.events[e.ID] = &c
}

func (s *memStore) addProfile(p *domain.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *p
	s.state.profiles[p.ID] = &c
}

func (s *memStore) event(id string) *domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := *s.state.events[id]
	return &e
}

func (s *memStore) registration(id string) *domain.Registration {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.state.registrations[id]
	if !ok {
		return nil
	}
	return cloneRegistration(r)
}

func (s *memStore) invitation(id string) domain.Invitation {
	s.mu.Lock()
	defer s.mu.Unlock()
	inv, ok := s.state.invitations[id]
	if !ok {
		return nil
	}
	return cloneInvitation(inv)
}

func (s *memStore) feedbackCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.feedback)
}

type memRepos struct {
	store *memStore
	inTx  bool
}

// use locks the store for a single call made outside a transaction.
func (r *memRepos) use() (*memState, func()) {
	if r.inTx {
		return r.store.state, func() {}
	}
	r.store.mu.Lock()
	return r.store.state, r.store.mu.Unlock
}

type memEvents memRepos

func (r *memEvents) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	st, done := (*memRepos)(r).use()
	defer done()
	e, ok := st.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	c := *e
	return &c, nil
}

func (r *memEvents) GetByIDForUpdate(ctx context.Context, id string) (*domain.Event, error) {
	return r.GetByID(ctx, id)
}

func (r *memEvents) UpdateRating(ctx context.Context, id string, avgRating float64, feedbackCount int) error {
	st, done := (*memRepos)(r).use()
	defer done()
	e, ok := st.events[id]
	if !ok {
		return domain.ErrEventNotFound
	}
	e.AvgRating = avgRating
	e.FeedbackCount = feedbackCount
	return nil
}

type memRegistrations memRepos

func eventRegistrations(st *memState, eventID string) []*domain.Registration {
	return lo.Filter(lo.Values(st.registrations), func(r *domain.Registration, _ int) bool {
		return r.EventID == eventID
	})
}

func (r *memRegistrations) Create(ctx context.Context, reg *domain.Registration) error {
	st, done := (*memRepos)(r).use()
	defer done()
	if _, ok := st.registrations[reg.ID]; ok {
		return domain.ErrAlreadyRegistered
	}
	for _, other := range eventRegistrations(st, reg.EventID) {
		if other.UserID == reg.UserID {
			return domain.ErrAlreadyRegistered
		}
		if reg.IsTeam() && other.IsTeam() && domain.TeamNameKey(other.TeamName) == domain.TeamNameKey(reg.TeamName) {
			return domain.ErrDuplicateTeamName
		}
		if len(lo.Intersect(other.ParticipantIDs, reg.ParticipantIDs)) > 0 {
			return domain.ErrAlreadyParticipant
		}
		if len(lo.Intersect(other.RollNumbers(), reg.RollNumbers())) > 0 {
			return domain.ErrDuplicateParticipant
		}
	}
	st.registrations[reg.ID] = cloneRegistration(reg)
	return nil
}

func (r *memRegistrations) GetByID(ctx context.Context, id string) (*domain.Registration, error) {
	st, done := (*memRepos)(r).use()
	defer done()
	reg, ok := st.registrations[id]
	if !ok {
		return nil, domain.ErrRegistrationNotFound
	}
	return cloneRegistration(reg), nil
}

func (r *memRegistrations) GetByIDForUpdate(ctx context.Context, id string) (*domain.Registration, error) {
	return r.GetByID(ctx, id)
}

func (r *memRegistrations) FindByParticipant(ctx context.Context, eventID, userID string) (*domain.Registration, error) {
	st, done := (*memRepos)(r).use()
	defer done()
	reg, ok := lo.Find(eventRegistrations(st, eventID), func(reg *domain.Registration) bool {
		return reg.HasParticipant(userID)
	})
	if !ok {
		return nil, domain.ErrRegistrationNotFound
	}
	return cloneRegistration(reg), nil
}

func (r *memRegistrations) ListByEventID(ctx context.Context, eventID string) ([]*domain.Registration, error) {
	st, done := (*memRepos)(r).use()
	defer done()
	regs := lo.Map(eventRegistrations(st, eventID), func(reg *domain.Registration, _ int) *domain.Registration {
		return cloneRegistration(reg)
	})
	sort.Slice(regs, func(i, j int) bool { return regs[i].ID < regs[j].ID })
	return regs, nil
}

func (r *memRegistrations) TeamNameExists(ctx context.Context, eventID, teamNameKey string) (bool, error) {
	st, done := (*memRepos)(r).use()
	defer done()
	return lo.ContainsBy(eventRegistrations(st, eventID), func(reg *domain.Registration) bool {
		return reg.IsTeam() && domain.TeamNameKey(reg.TeamName) == teamNameKey
	}), nil
}

func (r *memRegistrations) ListTakenRollNumbers(ctx context.Context, eventID string, rollNos []string) ([]string, error) {
	st, done := (*memRepos)(r).use()
	defer done()
	var used []string
	for _, reg := range eventRegistrations(st, eventID) {
		used = append(used, reg.RollNumbers()...)
	}
	taken := lo.Intersect(used, rollNos)
	sort.Strings(taken)
	return taken, nil
}

func (r *memRegistrations) AddMember(ctx context.Context, reg *domain.Registration, member domain.TeamMember) error {
	st, done := (*memRepos)(r).use()
	defer done()
	stored, ok := st.registrations[reg.ID]
	if !ok {
		return domain.ErrRegistrationNotFound
	}
	for _, other := range eventRegistrations(st, reg.EventID) {
		if member.MemberUserID != "" && other.HasParticipant(member.MemberUserID) {
			return domain.ErrAlreadyParticipant
		}
		if lo.Contains(other.RollNumbers(), member.RollNo) {
			return domain.ErrDuplicateParticipant
		}
	}
	stored.TeamMembers = append(stored.TeamMembers, member)
	if member.MemberUserID != "" {
		stored.ParticipantIDs = append(stored.ParticipantIDs, member.MemberUserID)
		stored.PendingRequests = lo.Without(stored.PendingRequests, member.MemberUserID)
	}
	stored.Status = reg.Status
	return nil
}

func (r *memRegistrations) AddPendingRequest(ctx context.Context, regID, userID string) error {
	st, done := (*memRepos)(r).use()
	defer done()
	if stored, ok := st.registrations[regID]; ok && !stored.HasPendingRequest(userID) {
		stored.PendingRequests = append(stored.PendingRequests, userID)
	}
	return nil
}

func (r *memRegistrations) RemovePendingRequest(ctx context.Context, regID, userID string) error {
	st, done := (*memRepos)(r).use()
	defer done()
	if stored, ok := st.registrations[regID]; ok {
		stored.PendingRequests = lo.Without(stored.PendingRequests, userID)
	}
	return nil
}

func (r *memRegistrations) MarkAttendance(ctx context.Context, regID, userID string, status domain.RegistrationStatus) error {
	st, done := (*memRepos)(r).use()
	defer done()
	stored, ok := st.registrations[regID]
	if !ok {
		return domain.ErrRegistrationNotFound
	}
	stored.Attendance[userID] = true
	stored.Status = status
	return nil
}

func (r *memRegistrations) MarkFeedbackSubmitted(ctx context.Context, regID, userID string) error {
	st, done := (*memRepos)(r).use()
	defer done()
	stored, ok := st.registrations[regID]
	if !ok {
		return domain.ErrRegistrationNotFound
	}
	stored.FeedbackSubmitted = true
	stored.FeedbackMap[userID] = true
	return nil
}

type memInvitations memRepos

func (r *memInvitations) Create(ctx context.Context, inv domain.Invitation) error {
	st, done := (*memRepos)(r).use()
	defer done()
	id := inv.Envelope().ID
	if _, ok := st.invitations[id]; ok {
		return domain.ErrInvitationExists
	}
	st.invitations[id] = cloneInvitation(inv)
	return nil
}

func (r *memInvitations) GetByID(ctx context.Context, id string) (domain.Invitation, error) {
	st, done := (*memRepos)(r).use()
	defer done()
	inv, ok := st.invitations[id]
	if !ok {
		return nil, domain.ErrInvitationNotFound
	}
	return cloneInvitation(inv), nil
}

func (r *memInvitations) GetByIDForUpdate(ctx context.Context, id string) (domain.Invitation, error) {
	return r.GetByID(ctx, id)
}

func (r *memInvitations) MarkAccepted(ctx context.Context, id string, respondedAt time.Time) error {
	st, done := (*memRepos)(r).use()
	defer done()
	inv, ok := st.invitations[id]
	if !ok {
		return domain.ErrInvitationNotFound
	}
	env := inv.Envelope()
	env.Status = domain.InvitationAccepted
	env.RespondedAt = &respondedAt
	return nil
}

func (r *memInvitations) Delete(ctx context.Context, id string) error {
	st, done := (*memRepos)(r).use()
	defer done()
	if _, ok := st.invitations[id]; !ok {
		return domain.ErrInvitationNotFound
	}
	delete(st.invitations, id)
	return nil
}

func (r *memInvitations) WithdrawPendingRequests(ctx context.Context, eventID, senderID string) ([]string, error) {
	st, done := (*memRepos)(r).use()
	defer done()
	var regIDs []string
	for id, inv := range st.invitations {
		env := inv.Envelope()
		if env.EventID == eventID && env.SenderID == senderID &&
			env.Type == domain.InvitationTypeRequest && env.Status == domain.InvitationPending {
			regIDs = append(regIDs, env.RegistrationID)
			delete(st.invitations, id)
		}
	}
	sort.Strings(regIDs)
	return regIDs, nil
}

func (r *memInvitations) list(pred func(env *domain.InvitationEnvelope) bool) []domain.Invitation {
	st, done := (*memRepos)(r).use()
	defer done()
	var out []domain.Invitation
	for _, inv := range st.invitations {
		if pred(inv.Envelope()) {
			out = append(out, cloneInvitation(inv))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Envelope().ID < out[j].Envelope().ID })
	return out
}

func (r *memInvitations) ListPendingByTarget(ctx context.Context, userID string) ([]domain.Invitation, error) {
	return r.list(func(env *domain.InvitationEnvelope) bool {
		return env.TargetUserID == userID && env.Status == domain.InvitationPending
	}), nil
}

func (r *memInvitations) ListByRegistrationID(ctx context.Context, registrationID string) ([]domain.Invitation, error) {
	return r.list(func(env *domain.InvitationEnvelope) bool {
		return env.RegistrationID == registrationID
	}), nil
}

type memFeedback memRepos

func (r *memFeedback) Create(ctx context.Context, fb *domain.Feedback) error {
	st, done := (*memRepos)(r).use()
	defer done()
	key := fb.EventID + "/" + fb.UserID
	if _, ok := st.feedback[key]; ok {
		return domain.ErrFeedbackAlreadySubmitted
	}
	if fb.ID == "" {
		fb.ID = uuid.NewString()
	}
	c := *fb
	st.feedback[key] = &c
	return nil
}

type memProfiles memRepos

func (r *memProfiles) GetByID(ctx context.Context, id string) (*domain.UserProfile, error) {
	st, done := (*memRepos)(r).use()
	defer done()
	p, ok := st.profiles[id]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	c := *p
	return &c, nil
}

func (r *memProfiles) Search(ctx context.Context, term string, limit int) ([]*domain.UserProfile, error) {
	st, done := (*memRepos)(r).use()
	defer done()
	term = strings.ToLower(term)
	matches := lo.Filter(lo.Values(st.profiles), func(p *domain.UserProfile, _ int) bool {
		return strings.Contains(strings.ToLower(p.DisplayName), term) || strings.Contains(strings.ToLower(p.RollNo), term)
	})
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return lo.Map(matches, func(p *domain.UserProfile, _ int) *domain.UserProfile {
		c := *p
		return &c
	}), nil
}

// recordingNotifier captures notifications and optionally fails them.
type recordingNotifier struct {
	mu        sync.Mutex
	created   []string
	responded []string
	err       error
}

func (n *recordingNotifier) InvitationCreated(ctx context.Context, inv domain.Invitation) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.created = append(n.created, inv.Envelope().ID)
	return n.err
}

func (n *recordingNotifier) InvitationResponded(ctx context.Context, inv domain.Invitation, decision domain.Decision) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.responded = append(n.responded, inv.Envelope().ID+":"+string(decision))
	return n.err
}

var (
	testNow   = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	testClock = func() time.Time { return testNow }
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// seededStore returns a store with an open team event ev-1 (teams of 2..3) and students u-1..u-6.
func seededStore() *memStore {
	s := newMemStore()
	s.addEvent(&domain.Event{
		ID:                 "ev-1",
		Title:              "Hackathon",
		Date:               testNow.Add(72 * time.Hour),
		MinTeamSize:        2,
		MaxTeamSize:        3,
		RegistrationStatus: domain.RegistrationOpen,
	})
	names := []string{"Asha", "Ravi", "Meera", "Kiran", "Divya", "Arjun"}
	for i, name := range names {
		n := i + 1
		s.addProfile(&domain.UserProfile{
			ID:          "u-" + string(rune('0'+n)),
			Email:       strings.ToLower(name) + "@example.edu",
			DisplayName: name,
			RollNo:      "R" + string(rune('0'+n)),
			Class:       "CSE",
			Section:     "A",
			Mobile:      "90000000" + string(rune('0'+n)),
		})
	}
	return s
}
