// Package hybrid wraps a durable store with an in-memory fallback. The
// store starts serving from memory, promotes itself to the durable
// backend once it comes up within the grace period, and drops back to
// memory permanently if the durable backend later fails.
package hybrid

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/CU-CodingClub/Main/internal/techfest/domain"
	"github.com/CU-CodingClub/Main/internal/techfest/store"
)

// DefaultGracePeriod bounds how long the store waits for the durable
// backend to come up before settling on memory.
const DefaultGracePeriod = 2 * time.Second

// Opener connects to the durable backend. It is invoked once, in the
// background, under the grace period deadline.
type Opener func(ctx context.Context) (store.Store, error)

// Store implements store.Store by routing calls to the durable backend
// when available and to the in-memory store otherwise.
//
// Transitions are one-way. Promotion happens at most once, when the
// opener succeeds. Demotion happens at most once, when a durable call
// fails with anything other than a domain result, after which all
// traffic stays on memory. Data written before a transition is not
// migrated across.
type Store struct {
	memory store.Store
	logger *slog.Logger

	mu      sync.RWMutex
	durable store.Store
	demoted bool
}

// New builds a hybrid store serving from memory and starts a background
// attempt to open the durable backend. A zero grace period falls back
// to DefaultGracePeriod.
func New(memory store.Store, opener Opener, grace time.Duration, logger *slog.Logger) *Store {
	if grace <= 0 {
		grace = DefaultGracePeriod
	}
	s := &Store{
		memory: memory,
		logger: logger,
	}
	go s.promote(opener, grace)
	return s
}

func (s *Store) promote(opener Opener, grace time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()

	durable, err := opener(ctx)
	if err != nil {
		s.logger.Warn("durable store unavailable, continuing with in-memory store",
			"error", err, "grace_period", grace)
		return
	}

	s.mu.Lock()
	if s.demoted {
		s.mu.Unlock()
		durable.Close(context.Background())
		return
	}
	s.durable = durable
	s.mu.Unlock()

	s.logger.Info("durable store connected, promoting from in-memory store")
}

// current returns the store calls should hit right now.
func (s *Store) current() store.Store {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.durable != nil && !s.demoted {
		return s.durable
	}
	return s.memory
}

func (s *Store) demote(op string, err error) {
	s.mu.Lock()
	already := s.demoted
	s.demoted = true
	s.mu.Unlock()
	if already {
		return
	}
	s.logger.Error("durable store failed, demoting to in-memory store",
		"operation", op, "error", err)
}

// run routes a call to the current store. A durable failure that is not
// a domain result demotes the store and retries the call on memory so
// the caller sees a served request, not an infrastructure error.
func run[T any](s *Store, op string, fn func(st store.Store) (T, error)) (T, error) {
	st := s.current()
	v, err := fn(st)
	if err == nil || st == s.memory || store.IsDomainResult(err) {
		return v, err
	}
	s.demote(op, err)
	return fn(s.memory)
}

func runErr(s *Store, op string, fn func(st store.Store) error) error {
	_, err := run(s, op, func(st store.Store) (struct{}, error) {
		return struct{}{}, fn(st)
	})
	return err
}

func (s *Store) Users() store.Users                   { return usersRepo{s} }
func (s *Store) Admins() store.Admins                 { return adminsRepo{s} }
func (s *Store) PasswordResets() store.PasswordResets { return resetsRepo{s} }
func (s *Store) Hackathon() store.Hackathon           { return hackathonRepo{s} }
func (s *Store) Workshop() store.Workshop             { return workshopRepo{s} }

func (s *Store) Stats(ctx context.Context) (domain.DashboardStats, error) {
	return run(s, "stats", func(st store.Store) (domain.DashboardStats, error) {
		return st.Stats(ctx)
	})
}

func (s *Store) Ping(ctx context.Context) error {
	return s.current().Ping(ctx)
}

// Close shuts down both backends. The durable backend is closed even
// after demotion so its connections are released.
func (s *Store) Close(ctx context.Context) error {
	s.mu.RLock()
	durable := s.durable
	s.mu.RUnlock()

	var durableErr error
	if durable != nil {
		durableErr = durable.Close(ctx)
	}
	if err := s.memory.Close(ctx); err != nil {
		return err
	}
	return durableErr
}

// Durable reports whether calls are currently served by the durable
// backend.
func (s *Store) Durable() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.durable != nil && !s.demoted
}

type usersRepo struct{ s *Store }

func (r usersRepo) List(ctx context.Context) ([]domain.User, error) {
	return run(r.s, "list users", func(st store.Store) ([]domain.User, error) {
		return st.Users().List(ctx)
	})
}

func (r usersRepo) GetByID(ctx context.Context, id string) (domain.User, error) {
	return run(r.s, "get user by id", func(st store.Store) (domain.User, error) {
		return st.Users().GetByID(ctx, id)
	})
}

func (r usersRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	return run(r.s, "get user by email", func(st store.Store) (domain.User, error) {
		return st.Users().GetByEmail(ctx, email)
	})
}

func (r usersRepo) Create(ctx context.Context, u domain.User) error {
	return runErr(r.s, "create user", func(st store.Store) error {
		return st.Users().Create(ctx, u)
	})
}

func (r usersRepo) Update(ctx context.Context, id string, upd domain.UserUpdate) (domain.User, error) {
	return run(r.s, "update user", func(st store.Store) (domain.User, error) {
		return st.Users().Update(ctx, id, upd)
	})
}

func (r usersRepo) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	return runErr(r.s, "update user password", func(st store.Store) error {
		return st.Users().UpdatePassword(ctx, id, passwordHash)
	})
}

func (r usersRepo) Count(ctx context.Context) (int64, error) {
	return run(r.s, "count users", func(st store.Store) (int64, error) {
		return st.Users().Count(ctx)
	})
}

type adminsRepo struct{ s *Store }

func (r adminsRepo) GetByID(ctx context.Context, id string) (domain.Admin, error) {
	return run(r.s, "get admin by id", func(st store.Store) (domain.Admin, error) {
		return st.Admins().GetByID(ctx, id)
	})
}

func (r adminsRepo) GetByEmail(ctx context.Context, email string) (domain.Admin, error) {
	return run(r.s, "get admin by email", func(st store.Store) (domain.Admin, error) {
		return st.Admins().GetByEmail(ctx, email)
	})
}

func (r adminsRepo) Create(ctx context.Context, a domain.Admin) error {
	return runErr(r.s, "create admin", func(st store.Store) error {
		return st.Admins().Create(ctx, a)
	})
}

type resetsRepo struct{ s *Store }

func (r resetsRepo) Create(ctx context.Context, reset domain.PasswordReset) error {
	return runErr(r.s, "create password reset", func(st store.Store) error {
		return st.PasswordResets().Create(ctx, reset)
	})
}

func (r resetsRepo) GetByToken(ctx context.Context, token string) (domain.PasswordReset, error) {
	return run(r.s, "get password reset by token", func(st store.Store) (domain.PasswordReset, error) {
		return st.PasswordResets().GetByToken(ctx, token)
	})
}

func (r resetsRepo) Delete(ctx context.Context, id string) error {
	return runErr(r.s, "delete password reset", func(st store.Store) error {
		return st.PasswordResets().Delete(ctx, id)
	})
}

type hackathonRepo struct{ s *Store }

func (r hackathonRepo) CreateRegistration(ctx context.Context, reg domain.HackathonRegistration) error {
	return runErr(r.s, "create hackathon registration", func(st store.Store) error {
		return st.Hackathon().CreateRegistration(ctx, reg)
	})
}

func (r hackathonRepo) GetByLeaderID(ctx context.Context, leaderID string) (domain.HackathonRegistration, error) {
	return run(r.s, "get hackathon registration by leader", func(st store.Store) (domain.HackathonRegistration, error) {
		return st.Hackathon().GetByLeaderID(ctx, leaderID)
	})
}

func (r hackathonRepo) ListWithMembers(ctx context.Context) ([]domain.HackathonTeam, error) {
	return run(r.s, "list hackathon registrations", func(st store.Store) ([]domain.HackathonTeam, error) {
		return st.Hackathon().ListWithMembers(ctx)
	})
}

func (r hackathonRepo) DeleteRegistration(ctx context.Context, id string) error {
	return runErr(r.s, "delete hackathon registration", func(st store.Store) error {
		return st.Hackathon().DeleteRegistration(ctx, id)
	})
}

func (r hackathonRepo) Count(ctx context.Context) (int64, error) {
	return run(r.s, "count hackathon registrations", func(st store.Store) (int64, error) {
		return st.Hackathon().Count(ctx)
	})
}

func (r hackathonRepo) AddMember(ctx context.Context, m domain.HackathonMember) error {
	return runErr(r.s, "add hackathon member", func(st store.Store) error {
		return st.Hackathon().AddMember(ctx, m)
	})
}

func (r hackathonRepo) MembersByRegistration(ctx context.Context, registrationID string) ([]domain.HackathonMember, error) {
	return run(r.s, "list hackathon members", func(st store.Store) ([]domain.HackathonMember, error) {
		return st.Hackathon().MembersByRegistration(ctx, registrationID)
	})
}

func (r hackathonRepo) DeleteMembersByRegistration(ctx context.Context, registrationID string) error {
	return runErr(r.s, "delete hackathon members", func(st store.Store) error {
		return st.Hackathon().DeleteMembersByRegistration(ctx, registrationID)
	})
}

type workshopRepo struct{ s *Store }

func (r workshopRepo) Create(ctx context.Context, reg domain.WorkshopRegistration) error {
	return runErr(r.s, "create workshop registration", func(st store.Store) error {
		return st.Workshop().Create(ctx, reg)
	})
}

func (r workshopRepo) GetByUserID(ctx context.Context, userID string) (domain.WorkshopRegistration, error) {
	return run(r.s, "get workshop registration by user", func(st store.Store) (domain.WorkshopRegistration, error) {
		return st.Workshop().GetByUserID(ctx, userID)
	})
}

func (r workshopRepo) GetByEmail(ctx context.Context, email string) (domain.WorkshopRegistration, error) {
	return run(r.s, "get workshop registration by email", func(st store.Store) (domain.WorkshopRegistration, error) {
		return st.Workshop().GetByEmail(ctx, email)
	})
}

func (r workshopRepo) List(ctx context.Context) ([]domain.WorkshopRegistration, error) {
	return run(r.s, "list workshop registrations", func(st store.Store) ([]domain.WorkshopRegistration, error) {
		return st.Workshop().List(ctx)
	})
}

func (r workshopRepo) Delete(ctx context.Context, id string) error {
	return runErr(r.s, "delete workshop registration", func(st store.Store) error {
		return st.Workshop().Delete(ctx, id)
	})
}

func (r workshopRepo) Count(ctx context.Context) (int64, error) {
	return run(r.s, "count workshop registrations", func(st store.Store) (int64, error) {
		return st.Workshop().Count(ctx)
	})
}
