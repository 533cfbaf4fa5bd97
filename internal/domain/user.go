package domain

import "context"

// UserProfile is a student profile owned by the profile collaborator. Read-only here.
// swagger:model UserProfile
type UserProfile struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	RollNo      string `json:"roll_no"`
	Class       string `json:"class"`
	Section     string `json:"section"`
	Mobile      string `json:"mobile"`
}

// Snapshot returns the registration-time copy of the profile.
func (p *UserProfile) Snapshot() UserDetails {
	return UserDetails{
		Name:    p.DisplayName,
		RollNo:  p.RollNo,
		Class:   p.Class,
		Section: p.Section,
		Mobile:  p.Mobile,
	}
}

// ProfileRepository defines read access to user profiles.
type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*UserProfile, error)
	// Search matches term case-insensitively against display name or roll number.
	Search(ctx context.Context, term string, limit int) ([]*UserProfile, error)
}

// TokenVerifier verifies a token and returns the authenticated user ID.
type TokenVerifier interface {
	Verify(token string) (userID string, err error)
}
