package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/CU-CodingClub/Main/internal/techfest/domain"
	"github.com/CU-CodingClub/Main/internal/techfest/store"
)

type workshopRepo struct {
	s *Store
}

func (r workshopRepo) Create(ctx context.Context, reg domain.WorkshopRegistration) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.workshopRegs {
		if strings.EqualFold(existing.Email, reg.Email) || existing.UserID == reg.UserID {
			return store.ErrAlreadyExists
		}
	}
	r.s.workshopRegs[reg.ID] = reg
	return nil
}

func (r workshopRepo) GetByUserID(ctx context.Context, userID string) (domain.WorkshopRegistration, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, reg := range r.s.workshopRegs {
		if reg.UserID == userID {
			return reg, nil
		}
	}
	return domain.WorkshopRegistration{}, store.ErrNotFound
}

func (r workshopRepo) GetByEmail(ctx context.Context, email string) (domain.WorkshopRegistration, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, reg := range r.s.workshopRegs {
		if strings.EqualFold(reg.Email, email) {
			return reg, nil
		}
	}
	return domain.WorkshopRegistration{}, store.ErrNotFound
}

func (r workshopRepo) List(ctx context.Context) ([]domain.WorkshopRegistration, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	regs := make([]domain.WorkshopRegistration, 0, len(r.s.workshopRegs))
	for _, reg := range r.s.workshopRegs {
		regs = append(regs, reg)
	}
	sort.Slice(regs, func(i, j int) bool {
		return regs[i].CreatedAt.Before(regs[j].CreatedAt)
	})
	return regs, nil
}

func (r workshopRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.workshopRegs, id)
	return nil
}

func (r workshopRepo) Count(ctx context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return int64(len(r.s.workshopRegs)), nil
}
