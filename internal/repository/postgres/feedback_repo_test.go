package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"campusevents/internal/domain"
)

func TestFeedbackRepository_Create(t *testing.T) {
	ctx := context.Background()
	submitted := time.Date(2025, 3, 5, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success assigns id",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO feedback`).
					WithArgs(sqlmock.AnyArg(), "ev-1", "u-2", "ev-1_u-1", 4, []byte(`{"content":5}`), "great", submitted).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "second submission returns ErrFeedbackAlreadySubmitted",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO feedback`).
					WillReturnError(&pq.Error{Code: "23505", Constraint: "feedback_event_user_key"})
			},
			wantErr: domain.ErrFeedbackAlreadySubmitted,
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO feedback`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: sql.ErrConnDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			fb := &domain.Feedback{
				EventID:        "ev-1",
				UserID:         "u-2",
				RegistrationID: "ev-1_u-1",
				OverallRating:  4,
				MatrixRatings:  map[string]int{"content": 5},
				Opinion:        "great",
				SubmittedAt:    submitted,
			}
			repo := NewFeedbackRepository(db)
			err = repo.Create(ctx, fb)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				_, parseErr := uuid.Parse(fb.ID)
				require.NoError(t, parseErr)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
