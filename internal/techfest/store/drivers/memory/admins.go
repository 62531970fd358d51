package memory

import (
	"context"
	"strings"

	"github.com/CU-CodingClub/Main/internal/techfest/domain"
	"github.com/CU-CodingClub/Main/internal/techfest/store"
)

type adminsRepo struct {
	s *Store
}

func (r adminsRepo) GetByID(ctx context.Context, id string) (domain.Admin, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.admins[id]
	if !ok {
		return domain.Admin{}, store.ErrNotFound
	}
	return a, nil
}

func (r adminsRepo) GetByEmail(ctx context.Context, email string) (domain.Admin, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, a := range r.s.admins {
		if strings.EqualFold(a.Email, email) {
			return a, nil
		}
	}
	return domain.Admin{}, store.ErrNotFound
}

func (r adminsRepo) Create(ctx context.Context, a domain.Admin) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.admins {
		if strings.EqualFold(existing.Email, a.Email) {
			return store.ErrAlreadyExists
		}
	}
	r.s.admins[a.ID] = a
	return nil
}
