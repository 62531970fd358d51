package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/CU-CodingClub/Main/internal/techfest/domain"
	"github.com/CU-CodingClub/Main/internal/techfest/store"
	"github.com/CU-CodingClub/Main/internal/techfest/store/drivers/memory"
	"github.com/CU-CodingClub/Main/pkg/cryptox"
	"github.com/CU-CodingClub/Main/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newUser(email string) domain.User {
	return domain.User{
		ID:           idx.New().String(),
		Name:         "Test User",
		Email:        email,
		PasswordHash: "hash",
		CreatedAt:    time.Now().UTC(),
	}
}

func TestSeedsDefaultAdmin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := memory.NewStore()

	admin, err := s.Admins().GetByEmail(ctx, store.DefaultAdminEmail)
	require.NoError(t, err)
	require.Equal(t, store.DefaultAdminName, admin.Name)
	require.NoError(t, cryptox.VerifyPassword(store.DefaultAdminPassword, admin.PasswordHash))

	// Lookup is case-insensitive.
	_, err = s.Admins().GetByEmail(ctx, "ADMIN@TIFFINBOX.COM")
	require.NoError(t, err)
}

func TestUsersCRUD(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := memory.NewStore()
	u := newUser("alice@example.com")

	require.NoError(t, s.Users().Create(ctx, u))

	t.Run("get by id", func(t *testing.T) {
		got, err := s.Users().GetByID(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, u.Email, got.Email)
	})

	t.Run("get by email is case-insensitive", func(t *testing.T) {
		got, err := s.Users().GetByEmail(ctx, "ALICE@Example.COM")
		require.NoError(t, err)
		require.Equal(t, u.ID, got.ID)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		dup := newUser("Alice@Example.com")
		require.ErrorIs(t, s.Users().Create(ctx, dup), store.ErrAlreadyExists)
	})

	t.Run("missing user reports not found", func(t *testing.T) {
		_, err := s.Users().GetByEmail(ctx, "nobody@example.com")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("update applies only non-nil fields", func(t *testing.T) {
		phone := "1234567890"
		got, err := s.Users().Update(ctx, u.ID, domain.UserUpdate{Phone: &phone})
		require.NoError(t, err)
		require.Equal(t, u.Name, got.Name)
		require.NotNil(t, got.Phone)
		require.Equal(t, phone, *got.Phone)
		require.False(t, got.UpdatedAt.IsZero())
	})

	t.Run("update missing user reports not found", func(t *testing.T) {
		_, err := s.Users().Update(ctx, "missing", domain.UserUpdate{})
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("update password", func(t *testing.T) {
		require.NoError(t, s.Users().UpdatePassword(ctx, u.ID, "new-hash"))
		got, err := s.Users().GetByID(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, "new-hash", got.PasswordHash)
	})
}

func TestPasswordResets(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := memory.NewStore()
	reset := domain.PasswordReset{
		ID:        idx.New().String(),
		Email:     "alice@example.com",
		Token:     "reset-token",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	require.NoError(t, s.PasswordResets().Create(ctx, reset))

	got, err := s.PasswordResets().GetByToken(ctx, "reset-token")
	require.NoError(t, err)
	require.Equal(t, reset.ID, got.ID)

	require.NoError(t, s.PasswordResets().Delete(ctx, reset.ID))

	_, err = s.PasswordResets().GetByToken(ctx, "reset-token")
	require.ErrorIs(t, err, store.ErrNotFound)

	// Deleting an absent row is not an error.
	require.NoError(t, s.PasswordResets().Delete(ctx, reset.ID))
}

func TestHackathonRegistrations(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := memory.NewStore()
	reg := domain.HackathonRegistration{
		ID:          idx.New().String(),
		TeamName:    "Bit Bandits",
		LeaderID:    "leader-1",
		LeaderName:  "Alice",
		LeaderEmail: "alice@example.com",
		CreatedAt:   time.Now().UTC(),
	}

	require.NoError(t, s.Hackathon().CreateRegistration(ctx, reg))

	t.Run("one registration per leader", func(t *testing.T) {
		again := reg
		again.ID = idx.New().String()
		require.ErrorIs(t, s.Hackathon().CreateRegistration(ctx, again), store.ErrAlreadyExists)
	})

	t.Run("members join their registration", func(t *testing.T) {
		for _, email := range []string{"bob@example.com", "carol@example.com"} {
			require.NoError(t, s.Hackathon().AddMember(ctx, domain.HackathonMember{
				ID:             idx.New().String(),
				RegistrationID: reg.ID,
				Name:           "Member",
				Email:          email,
			}))
		}

		members, err := s.Hackathon().MembersByRegistration(ctx, reg.ID)
		require.NoError(t, err)
		require.Len(t, members, 2)

		teams, err := s.Hackathon().ListWithMembers(ctx)
		require.NoError(t, err)
		require.Len(t, teams, 1)
		require.Len(t, teams[0].Members, 2)
		require.Equal(t, "Bit Bandits", teams[0].TeamName)
	})

	t.Run("deleting members clears only that registration", func(t *testing.T) {
		require.NoError(t, s.Hackathon().DeleteMembersByRegistration(ctx, reg.ID))
		members, err := s.Hackathon().MembersByRegistration(ctx, reg.ID)
		require.NoError(t, err)
		require.Empty(t, members)
	})

	t.Run("count and delete", func(t *testing.T) {
		n, err := s.Hackathon().Count(ctx)
		require.NoError(t, err)
		require.EqualValues(t, 1, n)

		require.NoError(t, s.Hackathon().DeleteRegistration(ctx, reg.ID))
		_, err = s.Hackathon().GetByLeaderID(ctx, "leader-1")
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestWorkshopRegistrations(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := memory.NewStore()
	reg := domain.WorkshopRegistration{
		ID:        idx.New().String(),
		UserID:    "user-1",
		Name:      "Alice",
		Email:     "alice@example.com",
		Phone:     "1234567890",
		College:   "CU",
		CreatedAt: time.Now().UTC(),
	}

	require.NoError(t, s.Workshop().Create(ctx, reg))

	t.Run("duplicate email rejected case-insensitively", func(t *testing.T) {
		dup := reg
		dup.ID = idx.New().String()
		dup.UserID = "user-2"
		dup.Email = "ALICE@example.com"
		require.ErrorIs(t, s.Workshop().Create(ctx, dup), store.ErrAlreadyExists)
	})

	t.Run("duplicate user rejected", func(t *testing.T) {
		dup := reg
		dup.ID = idx.New().String()
		dup.Email = "other@example.com"
		require.ErrorIs(t, s.Workshop().Create(ctx, dup), store.ErrAlreadyExists)
	})

	t.Run("lookups", func(t *testing.T) {
		byUser, err := s.Workshop().GetByUserID(ctx, "user-1")
		require.NoError(t, err)
		require.Equal(t, reg.ID, byUser.ID)

		byEmail, err := s.Workshop().GetByEmail(ctx, "Alice@Example.com")
		require.NoError(t, err)
		require.Equal(t, reg.ID, byEmail.ID)
	})
}

func TestStats(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := memory.NewStore()
	require.NoError(t, s.Users().Create(ctx, newUser("a@example.com")))
	require.NoError(t, s.Users().Create(ctx, newUser("b@example.com")))
	require.NoError(t, s.Workshop().Create(ctx, domain.WorkshopRegistration{
		ID:     idx.New().String(),
		UserID: "user-1",
		Email:  "a@example.com",
	}))

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, stats.TotalUsers)
	require.EqualValues(t, 0, stats.TotalHackathonTeams)
	require.EqualValues(t, 1, stats.TotalWorkshopParticipants)
}
