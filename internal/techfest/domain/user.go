package domain

import "time"

type User struct {
	ID           string
	Name         string
	Email        string // stored lowercased
	PasswordHash string // bcrypt encoded
	Phone        *string
	College      *string
	Year         *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserUpdate carries the mutable profile fields. Nil means unchanged.
type UserUpdate struct {
	Name    *string
	Phone   *string
	College *string
	Year    *string
}
