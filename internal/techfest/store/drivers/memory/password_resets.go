package memory

import (
	"context"

	"github.com/CU-CodingClub/Main/internal/techfest/domain"
	"github.com/CU-CodingClub/Main/internal/techfest/store"
)

type resetsRepo struct {
	s *Store
}

func (r resetsRepo) Create(ctx context.Context, reset domain.PasswordReset) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.resets[reset.ID] = reset
	return nil
}

func (r resetsRepo) GetByToken(ctx context.Context, token string) (domain.PasswordReset, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, reset := range r.s.resets {
		if reset.Token == token {
			return reset, nil
		}
	}
	return domain.PasswordReset{}, store.ErrNotFound
}

func (r resetsRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.resets, id)
	return nil
}
