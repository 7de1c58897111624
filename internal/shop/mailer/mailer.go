// Package mailer delivers outbound email. The only message the service
// sends today is the partner registration verification code.
package mailer

import (
	"context"
	"fmt"
	"log/slog"

	mail "github.com/go-mail/mail"
)

// Mailer sends a verification code to a recipient address.
type Mailer interface {
	SendVerificationCode(ctx context.Context, to, code string) error
}

// SMTPMailer sends mail through an SMTP relay using STARTTLS when the
// server offers it.
type SMTPMailer struct {
	Host string
	Port int
	From string
	User string
	Pass string
}

// NewSMTPMailer creates a mailer for the given relay.
func NewSMTPMailer(host string, port int, from, user, pass string) *SMTPMailer {
	return &SMTPMailer{
		Host: host,
		Port: port,
		From: from,
		User: user,
		Pass: pass,
	}
}

// SendVerificationCode emails the registration code. The code is the only
// secret in the message body, so the body is kept deliberately short.
func (m *SMTPMailer) SendVerificationCode(ctx context.Context, to, code string) error {
	msg := mail.NewMessage()
	msg.SetHeader("From", m.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Your Loom partner verification code")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Your verification code is %s.\n\nIt expires shortly. If you did not request it, ignore this email.\n", code))

	d := mail.NewDialer(m.Host, m.Port, m.User, m.Pass)

	done := make(chan error, 1)
	go func() { done <- d.DialAndSend(msg) }()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("smtp send: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// LogMailer writes the code to the log instead of sending mail. Dev and
// test only; it leaks the code to anyone who can read the log.
type LogMailer struct {
	Logger *slog.Logger
}

func (m *LogMailer) SendVerificationCode(ctx context.Context, to, code string) error {
	m.Logger.InfoContext(ctx, "verification code issued (dev mailer, not sent)",
		"to", to,
		"code", code,
	)
	return nil
}
