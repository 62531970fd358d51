package hybrid

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/CU-CodingClub/Main/internal/techfest/domain"
	"github.com/CU-CodingClub/Main/internal/techfest/store"
	"github.com/CU-CodingClub/Main/internal/techfest/store/drivers/memory"
)

var errConnLost = errors.New("connection reset by peer")

// faultStore delegates to an inner store until fail is flipped, after
// which user operations return an infrastructure error.
type faultStore struct {
	store.Store
	fail atomic.Bool
}

func newFaultStore(inner store.Store) *faultStore {
	return &faultStore{Store: inner}
}

func (f *faultStore) Users() store.Users {
	return faultUsers{Users: f.Store.Users(), f: f}
}

type faultUsers struct {
	store.Users
	f *faultStore
}

func (u faultUsers) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	if u.f.fail.Load() {
		return domain.User{}, errConnLost
	}
	return u.Users.GetByEmail(ctx, email)
}

func (u faultUsers) Count(ctx context.Context) (int64, error) {
	if u.f.fail.Load() {
		return 0, errConnLost
	}
	return u.Users.Count(ctx)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHybridServesFromMemoryWhenOpenerFails(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	opened := make(chan struct{})
	s := New(memory.NewStore(), func(ctx context.Context) (store.Store, error) {
		defer close(opened)
		return nil, errConnLost
	}, 50*time.Millisecond, testLogger())
	defer s.Close(ctx)

	<-opened
	require.False(t, s.Durable())

	admin, err := s.Admins().GetByEmail(ctx, store.DefaultAdminEmail)
	require.NoError(t, err)
	require.Equal(t, store.DefaultAdminEmail, admin.Email)
}

func TestHybridServesFromMemoryWhenOpenerExceedsGrace(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := New(memory.NewStore(), func(ctx context.Context) (store.Store, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}, 20*time.Millisecond, testLogger())
	defer s.Close(ctx)

	require.NoError(t, s.Users().Create(ctx, domain.User{
		ID:        "u1",
		Name:      "Asha",
		Email:     "asha@example.com",
		CreatedAt: time.Now().UTC(),
	}))

	require.Eventually(t, func() bool {
		return !s.Durable()
	}, time.Second, 5*time.Millisecond)
	u, err := s.Users().GetByEmail(ctx, "asha@example.com")
	require.NoError(t, err)
	require.Equal(t, "u1", u.ID)
}

func TestHybridPromotesToDurableStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	durable := newFaultStore(memory.NewStore())
	s := New(memory.NewStore(), func(ctx context.Context) (store.Store, error) {
		return durable, nil
	}, time.Second, testLogger())
	defer s.Close(ctx)

	require.Eventually(t, s.Durable, time.Second, 5*time.Millisecond)

	// Writes after promotion land in the durable backend.
	require.NoError(t, s.Users().Create(ctx, domain.User{
		ID:        "u1",
		Name:      "Asha",
		Email:     "asha@example.com",
		CreatedAt: time.Now().UTC(),
	}))
	_, err := durable.Store.Users().GetByEmail(ctx, "asha@example.com")
	require.NoError(t, err)
}

func TestHybridDemotesOnInfrastructureError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	durable := newFaultStore(memory.NewStore())
	s := New(memory.NewStore(), func(ctx context.Context) (store.Store, error) {
		return durable, nil
	}, time.Second, testLogger())
	defer s.Close(ctx)

	require.Eventually(t, s.Durable, time.Second, 5*time.Millisecond)

	durable.fail.Store(true)

	// The failing call is retried against memory, so the caller still
	// gets an answer.
	n, err := s.Users().Count(ctx)
	require.NoError(t, err)
	require.Zero(t, n)
	require.False(t, s.Durable())

	// Later calls stay on memory even after the backend recovers.
	durable.fail.Store(false)
	require.NoError(t, s.Users().Create(ctx, domain.User{
		ID:        "u1",
		Name:      "Asha",
		Email:     "asha@example.com",
		CreatedAt: time.Now().UTC(),
	}))
	_, err = durable.Store.Users().GetByEmail(ctx, "asha@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestHybridDomainErrorsDoNotDemote(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	durable := newFaultStore(memory.NewStore())
	s := New(memory.NewStore(), func(ctx context.Context) (store.Store, error) {
		return durable, nil
	}, time.Second, testLogger())
	defer s.Close(ctx)

	require.Eventually(t, s.Durable, time.Second, 5*time.Millisecond)

	_, err := s.Users().GetByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)
	require.True(t, s.Durable())
}
