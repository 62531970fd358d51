// Package mail sends transactional email for signups, registrations and
// password resets.
package mail

import (
	"context"
	"log/slog"
)

// Mailer delivers a single HTML message.
type Mailer interface {
	Send(ctx context.Context, to, subject, html string) error
}

// LogMailer records messages to the logger instead of delivering them.
// Used when SMTP is not configured and in tests.
type LogMailer struct {
	Logger *slog.Logger
}

func (m LogMailer) Send(_ context.Context, to, subject, _ string) error {
	m.Logger.Info("mail delivery skipped, smtp not configured",
		"to", to, "subject", subject)
	return nil
}
