package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/CU-CodingClub/Main/internal/techfest/domain"
	"github.com/CU-CodingClub/Main/internal/techfest/mail"
	"github.com/CU-CodingClub/Main/internal/techfest/store"
	"github.com/CU-CodingClub/Main/pkg/cryptox"
	"github.com/CU-CodingClub/Main/pkg/idx"
	"github.com/CU-CodingClub/Main/pkg/jwtx"
)

// ResetTokenTTL is how long a password reset link stays valid.
const ResetTokenTTL = time.Hour

// Auth handles account creation, login for both principal kinds, and
// the password reset flow.
type Auth struct {
	store  store.Store
	signer *jwtx.Signer
	mailer mail.Mailer
	logger *slog.Logger
	now    func() time.Time
}

func NewAuth(st store.Store, signer *jwtx.Signer, mailer mail.Mailer, logger *slog.Logger) *Auth {
	return &Auth{
		store:  st,
		signer: signer,
		mailer: mailer,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Signup registers a new account and returns it with a signed user
// token. Emails are matched case-insensitively, so Signup lowercases
// before storing.
func (s *Auth) Signup(ctx context.Context, name, email, password string) (domain.User, string, error) {
	email = normalizeEmail(email)

	_, err := s.store.Users().GetByEmail(ctx, email)
	if err == nil {
		return domain.User{}, "", ErrEmailTaken
	}
	if !errors.Is(err, store.ErrNotFound) {
		return domain.User{}, "", err
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, "", err
	}

	user := domain.User{
		ID:           idx.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    s.now(),
	}
	if err := s.store.Users().Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, "", ErrEmailTaken
		}
		return domain.User{}, "", err
	}

	token, err := s.signer.Sign(user.ID, jwtx.KindUser)
	if err != nil {
		return domain.User{}, "", err
	}

	if err := s.mailer.Send(ctx, user.Email, mail.SubjectWelcome, mail.WelcomeBody(user.Name)); err != nil {
		s.logger.Warn("failed to send welcome email", "email", user.Email, "error", err)
	}

	return user, token, nil
}

// Login authenticates a user and returns a signed user token.
func (s *Auth) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	user, err := s.store.Users().GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, "", ErrInvalidCredentials
		}
		return domain.User{}, "", err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		return domain.User{}, "", ErrInvalidCredentials
	}

	token, err := s.signer.Sign(user.ID, jwtx.KindUser)
	if err != nil {
		return domain.User{}, "", err
	}
	return user, token, nil
}

// AdminLogin authenticates an admin and returns a signed admin token.
func (s *Auth) AdminLogin(ctx context.Context, email, password string) (domain.Admin, string, error) {
	admin, err := s.store.Admins().GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Admin{}, "", ErrInvalidAdminCredentials
		}
		return domain.Admin{}, "", err
	}

	if err := cryptox.VerifyPassword(password, admin.PasswordHash); err != nil {
		return domain.Admin{}, "", ErrInvalidAdminCredentials
	}

	token, err := s.signer.Sign(admin.ID, jwtx.KindAdmin)
	if err != nil {
		return domain.Admin{}, "", err
	}
	return admin, token, nil
}

// ForgotPassword issues a reset token and mails a reset link. It never
// reveals whether the email belongs to an account, so every outcome
// short of an infrastructure failure reports success to the caller.
func (s *Auth) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.store.Users().GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.logger.Warn("forgot password lookup failed", "error", err)
		}
		return nil
	}

	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return err
	}

	reset := domain.PasswordReset{
		ID:        idx.New().String(),
		Email:     user.Email,
		Token:     token,
		ExpiresAt: s.now().Add(ResetTokenTTL),
	}
	if err := s.store.PasswordResets().Create(ctx, reset); err != nil {
		s.logger.Warn("failed to save reset token", "error", err)
		return nil
	}

	if err := s.mailer.Send(ctx, user.Email, mail.SubjectPasswordReset, mail.PasswordResetBody(token)); err != nil {
		s.logger.Warn("failed to send reset email", "email", user.Email, "error", err)
	}
	return nil
}

// ResetPassword consumes a reset token and replaces the account
// password. Tokens are single use and expire after ResetTokenTTL.
func (s *Auth) ResetPassword(ctx context.Context, token, newPassword string) error {
	reset, err := s.store.PasswordResets().GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrResetInvalid
		}
		return err
	}

	if reset.Expired(s.now()) {
		if err := s.store.PasswordResets().Delete(ctx, reset.ID); err != nil {
			s.logger.Warn("failed to delete expired reset token", "error", err)
		}
		return ErrResetInvalid
	}

	user, err := s.store.Users().GetByEmail(ctx, reset.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrResetInvalid
		}
		return err
	}

	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.store.Users().UpdatePassword(ctx, user.ID, hash); err != nil {
		return err
	}

	if err := s.store.PasswordResets().Delete(ctx, reset.ID); err != nil {
		s.logger.Warn("failed to delete used reset token", "error", err)
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
