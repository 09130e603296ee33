package auth

import "time"

// RefreshToken is a persisted refresh token row. Tokens are rotated on use
// and revoked on logout.
type RefreshToken struct {
	ID        string
	UserID    string
	Token     string
	ExpiresAt time.Time
	RevokedAt *time.Time
	IPAddress *string
	UserAgent *string
	CreatedAt time.Time
}

// IsValid reports whether the token is neither revoked nor expired.
func (t *RefreshToken) IsValid(now time.Time) bool {
	return t.RevokedAt == nil && now.Before(t.ExpiresAt)
}
