package mail

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
)

// SMTPConfig carries the connection settings for an SMTP relay. The
// user account doubles as the From address.
type SMTPConfig struct {
	Host string
	Port string
	User string
	Pass string
}

// Configured reports whether every field needed to send is present.
func (c SMTPConfig) Configured() bool {
	return c.Host != "" && c.Port != "" && c.User != "" && c.Pass != ""
}

// SMTPMailer sends HTML mail over a plain-auth SMTP relay.
type SMTPMailer struct {
	cfg SMTPConfig
}

func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Send(_ context.Context, to, subject, html string) error {
	addr := net.JoinHostPort(m.cfg.Host, m.cfg.Port)
	from := m.cfg.User

	msg := "From: " + from + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=\"utf-8\"\r\n\r\n" +
		html + "\r\n"

	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)
	if err := smtp.SendMail(addr, auth, from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("smtp send to %s: %w", to, err)
	}
	return nil
}
