package store

import (
	"context"
	"errors"

	"github.com/CU-CodingClub/Main/internal/techfest/domain"
)

var (
	// ErrNotFound reports an absent row. It is a domain result, not a
	// backend failure: the hybrid store never demotes on it.
	ErrNotFound = errors.New("store: not found")
	// ErrAlreadyExists reports a unique-key violation (e.g. duplicate email).
	ErrAlreadyExists = errors.New("store: already exists")
)

// DefaultAdmin is the credential seeded by every driver when no admin
// account exists yet. Change the password after first login.
const (
	DefaultAdminName     = "Admin"
	DefaultAdminEmail    = "admin@tiffinbox.com"
	DefaultAdminPassword = "admin123"
)

// Store is the root data access interface. Concrete drivers (mongo, memory)
// implement this, and the hybrid store composes them behind the same
// interface so handlers never know which backend served a call.
type Store interface {
	Users() Users
	Admins() Admins
	PasswordResets() PasswordResets
	Hackathon() Hackathon
	Workshop() Workshop

	// Stats computes the dashboard counters on demand.
	Stats(ctx context.Context) (domain.DashboardStats, error)

	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases any underlying resources.
	Close(ctx context.Context) error
}

type Users interface {
	List(ctx context.Context) ([]domain.User, error)

	GetByID(ctx context.Context, id string) (domain.User, error)

	// GetByEmail matches case-insensitively.
	GetByEmail(ctx context.Context, email string) (domain.User, error)

	// Create inserts a new user (id and timestamps provided by the caller).
	Create(ctx context.Context, u domain.User) error

	// Update applies the non-nil fields and returns the updated user.
	Update(ctx context.Context, id string, upd domain.UserUpdate) (domain.User, error)

	// UpdatePassword replaces the password hash.
	UpdatePassword(ctx context.Context, id string, passwordHash string) error

	Count(ctx context.Context) (int64, error)
}

type Admins interface {
	GetByID(ctx context.Context, id string) (domain.Admin, error)
	GetByEmail(ctx context.Context, email string) (domain.Admin, error)
	Create(ctx context.Context, a domain.Admin) error
}

type PasswordResets interface {
	Create(ctx context.Context, r domain.PasswordReset) error
	GetByToken(ctx context.Context, token string) (domain.PasswordReset, error)

	// Delete consumes a reset row. Deleting an absent row is not an error.
	Delete(ctx context.Context, id string) error
}

type Hackathon interface {
	CreateRegistration(ctx context.Context, r domain.HackathonRegistration) error
	GetByLeaderID(ctx context.Context, leaderID string) (domain.HackathonRegistration, error)

	// ListWithMembers returns every registration joined with its members.
	ListWithMembers(ctx context.Context) ([]domain.HackathonTeam, error)

	DeleteRegistration(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)

	AddMember(ctx context.Context, m domain.HackathonMember) error
	MembersByRegistration(ctx context.Context, registrationID string) ([]domain.HackathonMember, error)
	DeleteMembersByRegistration(ctx context.Context, registrationID string) error
}

type Workshop interface {
	Create(ctx context.Context, r domain.WorkshopRegistration) error
	GetByUserID(ctx context.Context, userID string) (domain.WorkshopRegistration, error)

	// GetByEmail matches case-insensitively.
	GetByEmail(ctx context.Context, email string) (domain.WorkshopRegistration, error)

	List(ctx context.Context) ([]domain.WorkshopRegistration, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// IsDomainResult reports whether err is one of the sentinel results that
// represent a normal outcome (absent row, duplicate key) rather than a
// backend failure.
func IsDomainResult(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrAlreadyExists)
}
