package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/CU-CodingClub/Main/internal/techfest/domain"
	"github.com/CU-CodingClub/Main/internal/techfest/store"
)

// Profile handles reads and updates of a user's own account.
type Profile struct {
	store  store.Store
	logger *slog.Logger
}

func NewProfile(st store.Store, logger *slog.Logger) *Profile {
	return &Profile{store: st, logger: logger}
}

func (s *Profile) Get(ctx context.Context, userID string) (domain.User, error) {
	user, err := s.store.Users().GetByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	return user, err
}

// Update applies the non-nil fields of upd and returns the updated
// user.
func (s *Profile) Update(ctx context.Context, userID string, upd domain.UserUpdate) (domain.User, error) {
	user, err := s.store.Users().Update(ctx, userID, upd)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	return user, err
}
