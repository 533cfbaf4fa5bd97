package domain

import "context"

// Repositories groups the repositories bound to one connection or transaction.
type Repositories struct {
	Events        EventRepository
	Registrations RegistrationRepository
	Invitations   InvitationRepository
	Feedback      FeedbackRepository
	Profiles      ProfileRepository
}

// Store gives access to repositories outside and inside a transaction.
type Store interface {
	// Repositories returns repositories that run each call on its own.
	Repositories() Repositories
	// WithinTx runs fn in one atomic transaction. fn may be invoked more than once when the
	// transaction conflicts with a concurrent one, so it must not have side effects outside repos.
	// An error returned by fn rolls the transaction back and is returned as is.
	WithinTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}
