package domain

import "time"

type Admin struct {
	ID           string
	Name         string
	Email        string // stored lowercased
	PasswordHash string // bcrypt encoded
	CreatedAt    time.Time
}
