package domain

import "time"

// WorkshopRegistration is one participant entry. At most one exists per user
// and per email.
type WorkshopRegistration struct {
	ID        string
	UserID    string
	Name      string
	Email     string
	Phone     string
	College   string
	CreatedAt time.Time
}
