// internal/app/system/mailer/mailer.go

// Package mailer sends transactional email over SMTP. The only flow that
// uses it today is password recovery; delivery failures are the caller's to
// decide on (the recovery endpoint logs and moves on, matching the
// fire-and-forget behavior clients already rely on).
package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"
)

// Config holds SMTP settings, loaded from app config at startup.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

// Email is one outbound message with both text and HTML bodies.
type Email struct {
	To       string
	Subject  string
	TextBody string
	HTMLBody string
}

// Mailer delivers Email values over a single SMTP endpoint.
type Mailer struct {
	cfg Config
	log *zap.Logger
}

func New(cfg Config, logger *zap.Logger) *Mailer {
	return &Mailer{cfg: cfg, log: logger}
}

// Send delivers the email as multipart/alternative so clients pick the
// richest body they support. Plain SMTP without auth is used when no
// username is configured (local Mailpit-style setups).
func (m *Mailer) Send(email Email) error {
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	msg := m.buildMessage(email)
	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{email.To}, msg); err != nil {
		m.log.Error("smtp send failed",
			zap.String("to", email.To),
			zap.String("subject", email.Subject),
			zap.Error(err))
		return err
	}

	m.log.Info("email sent",
		zap.String("to", email.To),
		zap.String("subject", email.Subject))
	return nil
}

const boundary = "mixed-boundary-fucapi"

func (m *Mailer) buildMessage(email Email) []byte {
	from := m.cfg.From
	if m.cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", m.cfg.FromName, m.cfg.From)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", email.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", email.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: multipart/alternative; boundary=%q\r\n", boundary)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	b.WriteString(email.TextBody)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n\r\n")
	b.WriteString(email.HTMLBody)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s--\r\n", boundary)
	return []byte(b.String())
}
