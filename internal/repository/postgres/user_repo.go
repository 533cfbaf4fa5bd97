package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"campusevents/internal/domain"
)

// profileRepository reads student profiles from the users table.
type profileRepository struct {
	DB dbtx
}

func NewProfileRepository(db *sql.DB) domain.ProfileRepository {
	return &profileRepository{DB: db}
}

const profileColumns = `id, email, name, roll_no, class, section, mobile`

func scanProfile(row rowScanner) (*domain.UserProfile, error) {
	p := &domain.UserProfile{}
	if err := row.Scan(&p.ID, &p.Email, &p.DisplayName, &p.RollNo, &p.Class, &p.Section, &p.Mobile); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *profileRepository) GetByID(ctx context.Context, id string) (*domain.UserProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM users WHERE id = $1`
	p, err := scanProfile(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *profileRepository) Search(ctx context.Context, term string, limit int) ([]*domain.UserProfile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM users
		WHERE name ILIKE $1 ESCAPE '\' OR roll_no ILIKE $1 ESCAPE '\'
		ORDER BY name
		LIMIT $2
	`
	rows, err := r.DB.QueryContext(ctx, query, likePattern(term), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := make([]*domain.UserProfile, 0)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern wraps term for a substring match with LIKE wildcards escaped.
func likePattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
