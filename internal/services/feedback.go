package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"

	"campusevents/internal/domain"
)

type feedbackService struct {
	store          domain.Store
	now            func() time.Time
	contextTimeout time.Duration
}

// NewFeedbackService creates the feedback aggregator.
func NewFeedbackService(store domain.Store, timeout time.Duration) domain.FeedbackService {
	return &feedbackService{
		store:          store,
		now:            time.Now,
		contextTimeout: timeout,
	}
}

func validRating(r int) bool {
	return r >= domain.MinRating && r <= domain.MaxRating
}

// Submit stores fb and folds its overall rating into the event average. The event row stays
// locked from the read of the aggregate until the update.
func (s *feedbackService) Submit(ctx context.Context, fb *domain.Feedback) error {
	if !validRating(fb.OverallRating) {
		return fmt.Errorf("%w: overall rating must be between %d and %d", domain.ErrInvalidInput, domain.MinRating, domain.MaxRating)
	}
	if bad, found := lo.FindKeyBy(fb.MatrixRatings, func(_ string, v int) bool { return !validRating(v) }); found {
		return fmt.Errorf("%w: rating %q must be between %d and %d", domain.ErrInvalidInput, bad, domain.MinRating, domain.MaxRating)
	}
	fb.Opinion = strings.TrimSpace(fb.Opinion)

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.store.WithinTx(ctx, func(ctx context.Context, repos domain.Repositories) error {
		event, err := repos.Events.GetByIDForUpdate(ctx, fb.EventID)
		if err != nil {
			return wrapErr("get event", err)
		}
		if !event.IsFeedbackOpen {
			return domain.ErrFeedbackClosed
		}
		reg, err := participation(ctx, repos, fb.EventID, fb.UserID)
		if err != nil {
			return err
		}
		if reg == nil {
			return domain.ErrNotRegistered
		}
		if reg.FeedbackMap[fb.UserID] {
			return domain.ErrFeedbackAlreadySubmitted
		}

		fb.RegistrationID = reg.ID
		fb.SubmittedAt = s.now()
		if err := repos.Feedback.Create(ctx, fb); err != nil {
			return wrapErr("create feedback", err)
		}
		avg, count := event.RatingWith(fb.OverallRating)
		if err := repos.Events.UpdateRating(ctx, event.ID, avg, count); err != nil {
			return wrapErr("update event rating", err)
		}
		if err := repos.Registrations.MarkFeedbackSubmitted(ctx, reg.ID, fb.UserID); err != nil {
			return wrapErr("mark feedback submitted", err)
		}
		return nil
	})
}
