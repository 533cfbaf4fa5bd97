package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"campusevents/internal/domain"
)

// Constraint names from migrations/0001_init.sql mapped to conflict errors.
var registrationConstraintErrors = map[string]error{
	"registrations_pkey":                domain.ErrAlreadyRegistered,
	"registrations_event_leader_key":    domain.ErrAlreadyRegistered,
	"registrations_event_team_name_key": domain.ErrDuplicateTeamName,
	"registration_roll_numbers_pkey":    domain.ErrDuplicateParticipant,
	"registration_participants_pkey":    domain.ErrAlreadyParticipant,
}

type registrationRepository struct {
	DB dbtx
}

func NewRegistrationRepository(db *sql.DB) domain.RegistrationRepository {
	return &registrationRepository{
		DB: db,
	}
}

const registrationColumns = `id, event_id, user_id, user_details, status, team_name, team_members,
		participant_ids, pending_requests, attendance, feedback_submitted, feedback_map, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRegistration(row rowScanner) (*domain.Registration, error) {
	reg := &domain.Registration{}
	var status string
	var teamName sql.NullString
	var details, members, attendance, feedbackMap []byte
	err := row.Scan(
		&reg.ID, &reg.EventID, &reg.UserID, &details, &status, &teamName, &members,
		pq.Array(&reg.ParticipantIDs), pq.Array(&reg.PendingRequests), &attendance,
		&reg.FeedbackSubmitted, &feedbackMap, &reg.CreatedAt, &reg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	reg.Status = domain.RegistrationStatus(status)
	reg.TeamName = teamName.String
	if err := json.Unmarshal(details, &reg.UserDetails); err != nil {
		return nil, fmt.Errorf("decode user_details: %w", err)
	}
	if err := json.Unmarshal(members, &reg.TeamMembers); err != nil {
		return nil, fmt.Errorf("decode team_members: %w", err)
	}
	if err := json.Unmarshal(attendance, &reg.Attendance); err != nil {
		return nil, fmt.Errorf("decode attendance: %w", err)
	}
	if err := json.Unmarshal(feedbackMap, &reg.FeedbackMap); err != nil {
		return nil, fmt.Errorf("decode feedback_map: %w", err)
	}
	if reg.TeamMembers == nil {
		reg.TeamMembers = []domain.TeamMember{}
	}
	if reg.ParticipantIDs == nil {
		reg.ParticipantIDs = []string{}
	}
	if reg.PendingRequests == nil {
		reg.PendingRequests = []string{}
	}
	if reg.Attendance == nil {
		reg.Attendance = map[string]bool{}
	}
	if reg.FeedbackMap == nil {
		reg.FeedbackMap = map[string]bool{}
	}
	reg.Status = reg.EffectiveStatus()
	return reg, nil
}

func mapRegistrationError(err error) error {
	if constraint, ok := uniqueViolation(err); ok {
		if mapped, known := registrationConstraintErrors[constraint]; known {
			return mapped
		}
	}
	return err
}

// Create inserts the registration together with its participant and roll number index rows.
// It must run inside a transaction for the three inserts to be atomic.
func (r *registrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	details, err := json.Marshal(reg.UserDetails)
	if err != nil {
		return fmt.Errorf("encode user_details: %w", err)
	}
	members, err := json.Marshal(reg.TeamMembers)
	if err != nil {
		return fmt.Errorf("encode team_members: %w", err)
	}
	var teamName, teamNameKey sql.NullString
	if reg.IsTeam() {
		teamName = sql.NullString{String: reg.TeamName, Valid: true}
		teamNameKey = sql.NullString{String: domain.TeamNameKey(reg.TeamName), Valid: true}
	}
	query := `
		INSERT INTO registrations (id, event_id, user_id, user_details, status, team_name, team_name_key,
			team_members, participant_ids, pending_requests, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err = r.DB.ExecContext(ctx, query,
		reg.ID, reg.EventID, reg.UserID, details, string(reg.Status), teamName, teamNameKey,
		members, pq.Array(reg.ParticipantIDs), pq.Array(reg.PendingRequests), reg.CreatedAt, reg.UpdatedAt,
	)
	if err != nil {
		return mapRegistrationError(err)
	}
	for _, userID := range reg.ParticipantIDs {
		if err := r.insertParticipant(ctx, reg, userID); err != nil {
			return err
		}
	}
	for _, rollNo := range reg.RollNumbers() {
		if err := r.insertRollNumber(ctx, reg, rollNo); err != nil {
			return err
		}
	}
	return nil
}

func (r *registrationRepository) insertParticipant(ctx context.Context, reg *domain.Registration, userID string) error {
	query := `
		INSERT INTO registration_participants (event_id, user_id, registration_id)
		VALUES ($1, $2, $3)
	`
	if _, err := r.DB.ExecContext(ctx, query, reg.EventID, userID, reg.ID); err != nil {
		return mapRegistrationError(err)
	}
	return nil
}

func (r *registrationRepository) insertRollNumber(ctx context.Context, reg *domain.Registration, rollNo string) error {
	query := `
		INSERT INTO registration_roll_numbers (event_id, roll_no, registration_id)
		VALUES ($1, $2, $3)
	`
	if _, err := r.DB.ExecContext(ctx, query, reg.EventID, rollNo, reg.ID); err != nil {
		return mapRegistrationError(err)
	}
	return nil
}

func (r *registrationRepository) GetByID(ctx context.Context, id string) (*domain.Registration, error) {
	query := `SELECT ` + registrationColumns + ` FROM registrations WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *registrationRepository) GetByIDForUpdate(ctx context.Context, id string) (*domain.Registration, error) {
	query := `SELECT ` + registrationColumns + ` FROM registrations WHERE id = $1 FOR UPDATE`
	return r.getOne(ctx, query, id)
}

func (r *registrationRepository) FindByParticipant(ctx context.Context, eventID, userID string) (*domain.Registration, error) {
	query := `
		SELECT ` + registrationColumns + `
		FROM registrations
		WHERE id = (
			SELECT registration_id FROM registration_participants
			WHERE event_id = $1 AND user_id = $2
		)
	`
	return r.getOne(ctx, query, eventID, userID)
}

func (r *registrationRepository) getOne(ctx context.Context, query string, args ...any) (*domain.Registration, error) {
	reg, err := scanRegistration(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, err
	}
	return reg, nil
}

func (r *registrationRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Registration, error) {
	query := `
		SELECT ` + registrationColumns + `
		FROM registrations
		WHERE event_id = $1
		ORDER BY created_at
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	regs := make([]*domain.Registration, 0)
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, err
		}
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}

func (r *registrationRepository) TeamNameExists(ctx context.Context, eventID, teamNameKey string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM registrations WHERE event_id = $1 AND team_name_key = $2)`
	var exists bool
	if err := r.DB.QueryRowContext(ctx, query, eventID, teamNameKey).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *registrationRepository) ListTakenRollNumbers(ctx context.Context, eventID string, rollNos []string) ([]string, error) {
	query := `
		SELECT roll_no FROM registration_roll_numbers
		WHERE event_id = $1 AND roll_no = ANY($2)
		ORDER BY roll_no
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID, pq.Array(rollNos))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	taken := make([]string, 0)
	for rows.Next() {
		var rollNo string
		if err := rows.Scan(&rollNo); err != nil {
			return nil, err
		}
		taken = append(taken, rollNo)
	}
	return taken, rows.Err()
}

func (r *registrationRepository) AddMember(ctx context.Context, reg *domain.Registration, member domain.TeamMember) error {
	if member.MemberUserID != "" {
		if err := r.insertParticipant(ctx, reg, member.MemberUserID); err != nil {
			return err
		}
	}
	if err := r.insertRollNumber(ctx, reg, member.RollNo); err != nil {
		return err
	}
	encoded, err := json.Marshal([]domain.TeamMember{member})
	if err != nil {
		return fmt.Errorf("encode team member: %w", err)
	}
	query := `
		UPDATE registrations
		SET team_members = team_members || $2::jsonb,
			participant_ids = CASE
				WHEN $3::text = '' OR $3::text = ANY(participant_ids) THEN participant_ids
				ELSE array_append(participant_ids, $3::text)
			END,
			pending_requests = array_remove(pending_requests, $3::text),
			status = $4,
			updated_at = NOW()
		WHERE id = $1
	`
	result, err := r.DB.ExecContext(ctx, query, reg.ID, encoded, member.MemberUserID, string(reg.Status))
	if err != nil {
		return err
	}
	return requireRow(result, domain.ErrRegistrationNotFound)
}

func (r *registrationRepository) AddPendingRequest(ctx context.Context, regID, userID string) error {
	query := `
		UPDATE registrations
		SET pending_requests = array_append(pending_requests, $2::text), updated_at = NOW()
		WHERE id = $1 AND NOT ($2::text = ANY(pending_requests))
	`
	_, err := r.DB.ExecContext(ctx, query, regID, userID)
	return err
}

func (r *registrationRepository) RemovePendingRequest(ctx context.Context, regID, userID string) error {
	query := `
		UPDATE registrations
		SET pending_requests = array_remove(pending_requests, $2::text), updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.DB.ExecContext(ctx, query, regID, userID)
	return err
}

func (r *registrationRepository) MarkAttendance(ctx context.Context, regID, userID string, status domain.RegistrationStatus) error {
	query := `
		UPDATE registrations
		SET attendance = attendance || jsonb_build_object($2::text, true),
			status = $3,
			updated_at = NOW()
		WHERE id = $1
	`
	return r.execOne(ctx, query, regID, userID, string(status))
}

func (r *registrationRepository) MarkFeedbackSubmitted(ctx context.Context, regID, userID string) error {
	query := `
		UPDATE registrations
		SET feedback_submitted = TRUE,
			feedback_map = feedback_map || jsonb_build_object($2::text, true),
			updated_at = NOW()
		WHERE id = $1
	`
	return r.execOne(ctx, query, regID, userID)
}

func (r *registrationRepository) execOne(ctx context.Context, query string, args ...any) error {
	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	return requireRow(result, domain.ErrRegistrationNotFound)
}
