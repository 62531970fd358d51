// Package memory is the volatile fallback store. Everything lives in
// process-local maps and is lost on restart.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/CU-CodingClub/Main/internal/techfest/domain"
	"github.com/CU-CodingClub/Main/internal/techfest/store"
	"github.com/CU-CodingClub/Main/pkg/cryptox"
	"github.com/CU-CodingClub/Main/pkg/idx"
)

type Store struct {
	mu sync.RWMutex

	users            map[string]domain.User
	admins           map[string]domain.Admin
	resets           map[string]domain.PasswordReset
	hackathonRegs    map[string]domain.HackathonRegistration
	hackathonMembers map[string]domain.HackathonMember
	workshopRegs     map[string]domain.WorkshopRegistration
}

// NewStore builds an empty store and seeds the default admin account.
func NewStore() *Store {
	s := &Store{
		users:            make(map[string]domain.User),
		admins:           make(map[string]domain.Admin),
		resets:           make(map[string]domain.PasswordReset),
		hackathonRegs:    make(map[string]domain.HackathonRegistration),
		hackathonMembers: make(map[string]domain.HackathonMember),
		workshopRegs:     make(map[string]domain.WorkshopRegistration),
	}
	s.seedDefaultAdmin()
	return s
}

func (s *Store) seedDefaultAdmin() {
	hash, err := cryptox.HashPasswordCost(store.DefaultAdminPassword, cryptox.SeedCost)
	if err != nil {
		// bcrypt only errors on an out-of-range cost; SeedCost is a constant.
		panic("memory: seeding default admin: " + err.Error())
	}

	admin := domain.Admin{
		ID:           idx.New().String(),
		Name:         store.DefaultAdminName,
		Email:        store.DefaultAdminEmail,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	s.admins[admin.ID] = admin
}

func (s *Store) Users() store.Users                   { return usersRepo{s} }
func (s *Store) Admins() store.Admins                 { return adminsRepo{s} }
func (s *Store) PasswordResets() store.PasswordResets { return resetsRepo{s} }
func (s *Store) Hackathon() store.Hackathon           { return hackathonRepo{s} }
func (s *Store) Workshop() store.Workshop             { return workshopRepo{s} }

func (s *Store) Stats(ctx context.Context) (domain.DashboardStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return domain.DashboardStats{
		TotalUsers:                int64(len(s.users)),
		TotalHackathonTeams:       int64(len(s.hackathonRegs)),
		TotalWorkshopParticipants: int64(len(s.workshopRegs)),
	}, nil
}

func (s *Store) Ping(ctx context.Context) error { return nil }

func (s *Store) Close(ctx context.Context) error { return nil }
