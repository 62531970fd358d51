// Package jwtx issues and verifies the bearer tokens used by the platform.
// Tokens are HS256-signed claims carrying the principal id and kind.
package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Kind identifies the principal a token was issued for.
type Kind string

const (
	KindUser  Kind = "user"
	KindAdmin Kind = "admin"
)

// DefaultTTL is the default token lifetime.
const DefaultTTL = 7 * 24 * time.Hour

var (
	// ErrInvalidToken reports a token that failed signature or expiry checks.
	ErrInvalidToken = errors.New("jwtx: invalid token")
	// ErrWrongKind reports a valid token presented for the wrong principal kind.
	ErrWrongKind = errors.New("jwtx: wrong token kind")
)

// Claims are the signed contents of a platform token.
type Claims struct {
	Kind Kind `json:"kind"`
	jwt.RegisteredClaims
}

// PrincipalID returns the id of the user or admin the token was issued for.
func (c Claims) PrincipalID() string { return c.Subject }

// Verifier verifies a raw token string and returns its claims.
type Verifier interface {
	Verify(raw string) (Claims, error)
}

// Signer signs and verifies tokens with a shared HS256 secret.
type Signer struct {
	secret []byte
	ttl    time.Duration
}

// NewSigner builds a Signer. A zero ttl falls back to DefaultTTL.
func NewSigner(secret string, ttl time.Duration) *Signer {
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &Signer{secret: []byte(secret), ttl: ttl}
}

// Sign issues a token for the given principal.
func (s *Signer) Sign(principalID string, kind Kind) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		Kind: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principalID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify parses and validates a raw token. The caller is responsible for
// checking the claims' Kind against the expected principal.
func (s *Signer) Verify(raw string) (Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return Claims{}, ErrInvalidToken
	}
	return claims, nil
}

// RequireKind returns ErrWrongKind unless the claims carry the expected kind.
func (c Claims) RequireKind(kind Kind) error {
	if c.Kind != kind {
		return ErrWrongKind
	}
	return nil
}
