package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"campusevents/internal/domain"
)

type invitationRepository struct {
	DB dbtx
}

func NewInvitationRepository(db *sql.DB) domain.InvitationRepository {
	return &invitationRepository{
		DB: db,
	}
}

const invitationColumns = `id, type, event_id, event_title, team_name, registration_id, sender_id, sender_name,
		target_user_id, target_name, target_roll_no, status, created_at, responded_at`

// scanInvitation reads one row and builds the variant named by the type column.
func scanInvitation(row rowScanner) (domain.Invitation, error) {
	var env domain.InvitationEnvelope
	var invType, status string
	var rollNo sql.NullString
	var respondedAt sql.NullTime
	err := row.Scan(
		&env.ID, &invType, &env.EventID, &env.EventTitle, &env.TeamName, &env.RegistrationID,
		&env.SenderID, &env.SenderName, &env.TargetUserID, &env.TargetName, &rollNo, &status,
		&env.CreatedAt, &respondedAt,
	)
	if err != nil {
		return nil, err
	}
	env.Type = domain.InvitationType(invType)
	env.Status = domain.InvitationStatus(status)
	if respondedAt.Valid {
		t := respondedAt.Time
		env.RespondedAt = &t
	}
	switch env.Type {
	case domain.InvitationTypeInvite:
		return &domain.TeamInvite{InvitationEnvelope: env, TargetRollNo: rollNo.String}, nil
	case domain.InvitationTypeRequest:
		return &domain.JoinRequest{InvitationEnvelope: env}, nil
	default:
		return nil, fmt.Errorf("invitation %s: unknown type %q", env.ID, invType)
	}
}

func (r *invitationRepository) Create(ctx context.Context, inv domain.Invitation) error {
	env := inv.Envelope()
	var rollNo sql.NullString
	if invite, ok := inv.(*domain.TeamInvite); ok {
		rollNo = sql.NullString{String: invite.TargetRollNo, Valid: true}
	}
	query := `
		INSERT INTO invitations (id, type, event_id, event_title, team_name, registration_id, sender_id,
			sender_name, target_user_id, target_name, target_roll_no, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := r.DB.ExecContext(ctx, query,
		env.ID, string(env.Type), env.EventID, env.EventTitle, env.TeamName, env.RegistrationID, env.SenderID,
		env.SenderName, env.TargetUserID, env.TargetName, rollNo, string(env.Status), env.CreatedAt,
	)
	if err != nil {
		if _, ok := uniqueViolation(err); ok {
			return domain.ErrInvitationExists
		}
		return err
	}
	return nil
}

func (r *invitationRepository) GetByID(ctx context.Context, id string) (domain.Invitation, error) {
	query := `SELECT ` + invitationColumns + ` FROM invitations WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *invitationRepository) GetByIDForUpdate(ctx context.Context, id string) (domain.Invitation, error) {
	query := `SELECT ` + invitationColumns + ` FROM invitations WHERE id = $1 FOR UPDATE`
	return r.getOne(ctx, query, id)
}

func (r *invitationRepository) getOne(ctx context.Context, query string, id string) (domain.Invitation, error) {
	inv, err := scanInvitation(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInvitationNotFound
		}
		return nil, err
	}
	return inv, nil
}

func (r *invitationRepository) MarkAccepted(ctx context.Context, id string, respondedAt time.Time) error {
	query := `UPDATE invitations SET status = $2, responded_at = $3 WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id, string(domain.InvitationAccepted), respondedAt)
	if err != nil {
		return err
	}
	return requireRow(result, domain.ErrInvitationNotFound)
}

func (r *invitationRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM invitations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(result, domain.ErrInvitationNotFound)
}

func (r *invitationRepository) WithdrawPendingRequests(ctx context.Context, eventID, senderID string) ([]string, error) {
	query := `
		DELETE FROM invitations
		WHERE event_id = $1 AND sender_id = $2 AND type = $3 AND status = $4
		RETURNING registration_id
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID, senderID,
		string(domain.InvitationTypeRequest), string(domain.InvitationPending))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	regIDs := make([]string, 0)
	for rows.Next() {
		var regID string
		if err := rows.Scan(&regID); err != nil {
			return nil, err
		}
		regIDs = append(regIDs, regID)
	}
	return regIDs, rows.Err()
}

func (r *invitationRepository) ListPendingByTarget(ctx context.Context, userID string) ([]domain.Invitation, error) {
	query := `
		SELECT ` + invitationColumns + `
		FROM invitations
		WHERE target_user_id = $1 AND status = $2
		ORDER BY created_at DESC
	`
	return r.list(ctx, query, userID, string(domain.InvitationPending))
}

func (r *invitationRepository) ListByRegistrationID(ctx context.Context, registrationID string) ([]domain.Invitation, error) {
	query := `
		SELECT ` + invitationColumns + `
		FROM invitations
		WHERE registration_id = $1
		ORDER BY created_at DESC
	`
	return r.list(ctx, query, registrationID)
}

func (r *invitationRepository) list(ctx context.Context, query string, args ...any) ([]domain.Invitation, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	invs := make([]domain.Invitation, 0)
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, err
		}
		invs = append(invs, inv)
	}
	return invs, rows.Err()
}
