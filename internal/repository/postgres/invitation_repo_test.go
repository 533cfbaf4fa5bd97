package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"campusevents/internal/domain"
)

var invitationRowColumns = []string{
	"id", "type", "event_id", "event_title", "team_name", "registration_id", "sender_id", "sender_name",
	"target_user_id", "target_name", "target_roll_no", "status", "created_at", "responded_at",
}

func TestInvitationRepository_Create(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)

	invite := &domain.TeamInvite{
		InvitationEnvelope: domain.InvitationEnvelope{
			ID: "invite_ev-1_u-3", Type: domain.InvitationTypeInvite, EventID: "ev-1", EventTitle: "Hackathon",
			TeamName: "Falcons", RegistrationID: "ev-1_u-1", SenderID: "u-1", SenderName: "Asha",
			TargetUserID: "u-3", TargetName: "Meera", Status: domain.InvitationPending, CreatedAt: created,
		},
		TargetRollNo: "R3",
	}
	request := &domain.JoinRequest{
		InvitationEnvelope: domain.InvitationEnvelope{
			ID: "request_ev-1_u-4_ev-1_u-1", Type: domain.InvitationTypeRequest, EventID: "ev-1", EventTitle: "Hackathon",
			TeamName: "Falcons", RegistrationID: "ev-1_u-1", SenderID: "u-4", SenderName: "Kiran",
			TargetUserID: "u-1", TargetName: "Asha", Status: domain.InvitationPending, CreatedAt: created,
		},
	}

	tests := []struct {
		name    string
		inv     domain.Invitation
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "invite stores roll number",
			inv:  invite,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO invitations`).
					WithArgs("invite_ev-1_u-3", "invite", "ev-1", "Hackathon", "Falcons", "ev-1_u-1", "u-1",
						"Asha", "u-3", "Meera", "R3", "pending", created).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "request stores null roll number",
			inv:  request,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO invitations`).
					WithArgs("request_ev-1_u-4_ev-1_u-1", "request", "ev-1", "Hackathon", "Falcons", "ev-1_u-1", "u-4",
						"Kiran", "u-1", "Asha", nil, "pending", created).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "duplicate id returns ErrInvitationExists",
			inv:  invite,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO invitations`).
					WillReturnError(&pq.Error{Code: "23505", Constraint: "invitations_pkey"})
			},
			wantErr: domain.ErrInvitationExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewInvitationRepository(db)
			err = repo.Create(ctx, tt.inv)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestInvitationRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)
	responded := created.Add(time.Hour)

	t.Run("invite variant", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT .* FROM invitations WHERE id = \$1`).
			WithArgs("invite_ev-1_u-3").
			WillReturnRows(sqlmock.NewRows(invitationRowColumns).AddRow(
				"invite_ev-1_u-3", "invite", "ev-1", "Hackathon", "Falcons", "ev-1_u-1", "u-1", "Asha",
				"u-3", "Meera", "R3", "accepted", created, responded,
			))

		repo := NewInvitationRepository(db)
		inv, err := repo.GetByID(ctx, "invite_ev-1_u-3")
		require.NoError(t, err)
		invite, ok := inv.(*domain.TeamInvite)
		require.True(t, ok)
		require.Equal(t, "R3", invite.TargetRollNo)
		require.Equal(t, domain.InvitationAccepted, invite.Status)
		require.NotNil(t, invite.RespondedAt)
		require.True(t, responded.Equal(*invite.RespondedAt))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("request variant", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT .* FROM invitations WHERE id = \$1 FOR UPDATE`).
			WithArgs("request_ev-1_u-4_ev-1_u-1").
			WillReturnRows(sqlmock.NewRows(invitationRowColumns).AddRow(
				"request_ev-1_u-4_ev-1_u-1", "request", "ev-1", "Hackathon", "Falcons", "ev-1_u-1", "u-4", "Kiran",
				"u-1", "Asha", nil, "pending", created, nil,
			))

		repo := NewInvitationRepository(db)
		inv, err := repo.GetByIDForUpdate(ctx, "request_ev-1_u-4_ev-1_u-1")
		require.NoError(t, err)
		request, ok := inv.(*domain.JoinRequest)
		require.True(t, ok)
		require.Equal(t, "u-4", request.SenderID)
		require.Nil(t, request.RespondedAt)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`FROM invitations`).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		repo := NewInvitationRepository(db)
		_, err = repo.GetByID(ctx, "missing")
		require.ErrorIs(t, err, domain.ErrInvitationNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown type", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`FROM invitations`).
			WithArgs("odd").
			WillReturnRows(sqlmock.NewRows(invitationRowColumns).AddRow(
				"odd", "gift", "ev-1", "", "", "ev-1_u-1", "u-1", "", "u-2", "", nil, "pending", created, nil,
			))

		repo := NewInvitationRepository(db)
		_, err = repo.GetByID(ctx, "odd")
		require.Error(t, err)
		require.Contains(t, err.Error(), "unknown type")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestInvitationRepository_MarkAcceptedAndDelete(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2025, 3, 2, 11, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		run     func(repo domain.InvitationRepository) error
		wantErr error
	}{
		{
			name: "mark accepted",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE invitations SET status = \$2, responded_at = \$3 WHERE id = \$1`).
					WithArgs("invite_ev-1_u-3", "accepted", at).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			run: func(repo domain.InvitationRepository) error {
				return repo.MarkAccepted(ctx, "invite_ev-1_u-3", at)
			},
		},
		{
			name: "mark accepted missing",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE invitations`).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			run: func(repo domain.InvitationRepository) error {
				return repo.MarkAccepted(ctx, "missing", at)
			},
			wantErr: domain.ErrInvitationNotFound,
		},
		{
			name: "delete",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM invitations WHERE id = \$1`).
					WithArgs("invite_ev-1_u-3").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			run: func(repo domain.InvitationRepository) error {
				return repo.Delete(ctx, "invite_ev-1_u-3")
			},
		},
		{
			name: "delete missing",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM invitations`).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			run: func(repo domain.InvitationRepository) error {
				return repo.Delete(ctx, "missing")
			},
			wantErr: domain.ErrInvitationNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			err = tt.run(NewInvitationRepository(db))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestInvitationRepository_WithdrawPendingRequests(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`DELETE FROM invitations WHERE event_id = \$1 AND sender_id = \$2 AND type = \$3 AND status = \$4 RETURNING registration_id`).
		WithArgs("ev-1", "u-4", "request", "pending").
		WillReturnRows(sqlmock.NewRows([]string{"registration_id"}).AddRow("ev-1_u-3").AddRow("ev-1_u-5"))

	repo := NewInvitationRepository(db)
	regIDs, err := repo.WithdrawPendingRequests(context.Background(), "ev-1", "u-4")
	require.NoError(t, err)
	require.Equal(t, []string{"ev-1_u-3", "ev-1_u-5"}, regIDs)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInvitationRepository_Lists(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM invitations WHERE target_user_id = \$1 AND status = \$2`).
		WithArgs("u-3", "pending").
		WillReturnRows(sqlmock.NewRows(invitationRowColumns).AddRow(
			"invite_ev-1_u-3", "invite", "ev-1", "Hackathon", "Falcons", "ev-1_u-1", "u-1", "Asha",
			"u-3", "Meera", "R3", "pending", created, nil,
		))
	mock.ExpectQuery(`FROM invitations WHERE registration_id = \$1`).
		WithArgs("ev-1_u-1").
		WillReturnRows(sqlmock.NewRows(invitationRowColumns).
			AddRow("invite_ev-1_u-3", "invite", "ev-1", "Hackathon", "Falcons", "ev-1_u-1", "u-1", "Asha",
				"u-3", "Meera", "R3", "pending", created, nil).
			AddRow("request_ev-1_u-4_ev-1_u-1", "request", "ev-1", "Hackathon", "Falcons", "ev-1_u-1", "u-4", "Kiran",
				"u-1", "Asha", nil, "pending", created, nil))

	repo := NewInvitationRepository(db)
	pending, err := repo.ListPendingByTarget(ctx, "u-3")
	require.NoError(t, err)
	require.Len(t, pending, 1)

	sent, err := repo.ListByRegistrationID(ctx, "ev-1_u-1")
	require.NoError(t, err)
	require.Len(t, sent, 2)
	require.IsType(t, &domain.TeamInvite{}, sent[0])
	require.IsType(t, &domain.JoinRequest{}, sent[1])
	require.NoError(t, mock.ExpectationsWereMet())
}
