package domain

import "time"

// PasswordReset is a single-use token letting a user set a new password.
type PasswordReset struct {
	ID        string
	Email     string
	Token     string
	ExpiresAt time.Time
}

// Expired reports whether the reset token is past its expiry at the given time.
func (p PasswordReset) Expired(now time.Time) bool {
	return now.After(p.ExpiresAt)
}
