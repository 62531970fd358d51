package jwtx_test

import (
	"testing"
	"time"

	"github.com/CU-CodingClub/Main/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestSignAndVerify(t *testing.T) {
	t.Parallel()

	signer := jwtx.NewSigner("test-secret", time.Hour)

	raw, err := signer.Sign("user-1", jwtx.KindUser)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	claims, err := signer.Verify(raw)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.PrincipalID())
	require.Equal(t, jwtx.KindUser, claims.Kind)
	require.NoError(t, claims.RequireKind(jwtx.KindUser))
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	raw, err := jwtx.NewSigner("secret-a", time.Hour).Sign("user-1", jwtx.KindUser)
	require.NoError(t, err)

	_, err = jwtx.NewSigner("secret-b", time.Hour).Verify(raw)
	require.ErrorIs(t, err, jwtx.ErrInvalidToken)
}

func TestVerifyRejectsExpired(t *testing.T) {
	t.Parallel()

	signer := jwtx.NewSigner("test-secret", -time.Minute)

	raw, err := signer.Sign("user-1", jwtx.KindUser)
	require.NoError(t, err)

	_, err = signer.Verify(raw)
	require.ErrorIs(t, err, jwtx.ErrInvalidToken)
}

func TestRequireKindMismatch(t *testing.T) {
	t.Parallel()

	signer := jwtx.NewSigner("test-secret", time.Hour)

	raw, err := signer.Sign("admin-1", jwtx.KindAdmin)
	require.NoError(t, err)

	claims, err := signer.Verify(raw)
	require.NoError(t, err)
	require.ErrorIs(t, claims.RequireKind(jwtx.KindUser), jwtx.ErrWrongKind)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := jwtx.NewSigner("test-secret", time.Hour).Verify("not.a.token")
	require.ErrorIs(t, err, jwtx.ErrInvalidToken)
}

func TestZeroTTLFallsBackToDefault(t *testing.T) {
	t.Parallel()

	signer := jwtx.NewSigner("test-secret", 0)

	raw, err := signer.Sign("user-1", jwtx.KindUser)
	require.NoError(t, err)

	claims, err := signer.Verify(raw)
	require.NoError(t, err)
	require.WithinDuration(t,
		time.Now().Add(jwtx.DefaultTTL),
		claims.ExpiresAt.Time,
		time.Minute,
	)
}
