package service

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"workjunction-backend/internal/logger"
)

// MailerInterface delivers one-time verification codes to users
type MailerInterface interface {
	SendOTP(ctx context.Context, to, code string) error
}

// SMTPMailer sends verification codes over SMTP
type SMTPMailer struct {
	client *mail.Client
	from   string
}

// NewSMTPMailer creates an SMTP mailer
func NewSMTPMailer(host string, port int, username, password, from string) (*SMTPMailer, error) {
	client, err := mail.NewClient(host,
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithSSL(),
		mail.WithPort(port),
		mail.WithUsername(username),
		mail.WithPassword(password),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mail client: %w", err)
	}
	return &SMTPMailer{client: client, from: from}, nil
}

// SendOTP delivers a verification code by email
func (m *SMTPMailer) SendOTP(ctx context.Context, to, code string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject("Your WorkJunction verification code")
	msg.SetBodyString(mail.TypeTextPlain,
		fmt.Sprintf("Your verification code is %s. It expires in a few minutes.", code))

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send otp email: %w", err)
	}
	return nil
}

// LogMailer writes codes to the log instead of sending email. Used in
// development when no SMTP host is configured.
type LogMailer struct {
	log *logger.Logger
}

// NewLogMailer creates a logging mailer
func NewLogMailer(log *logger.Logger) *LogMailer {
	return &LogMailer{log: log}
}

// SendOTP logs the verification code
func (m *LogMailer) SendOTP(ctx context.Context, to, code string) error {
	m.log.WithFields(map[string]interface{}{
		"to":   to,
		"code": code,
	}).Info("otp delivery skipped, smtp not configured")
	return nil
}
