// Package mail delivers transactional email over SMTP.
package mail

import (
	"context"
	"fmt"
	"log/slog"

	gomail "github.com/wneessen/go-mail"

	"github.com/benx421/easydinar/internal/config"
	"github.com/benx421/easydinar/internal/service"
)

const passwordResetSubject = "EasyDinar password reset"

// SMTPMailer sends password reset messages through an SMTP relay
type SMTPMailer struct {
	from   string
	opts   []gomail.Option
	host   string
	logger *slog.Logger
}

// NewSMTPMailer creates a mailer for the relay described by cfg
func NewSMTPMailer(cfg config.MailConfig, logger *slog.Logger) (*SMTPMailer, error) {
	policy, err := tlsPolicy(cfg.TLSPolicy)
	if err != nil {
		return nil, err
	}

	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTLSPolicy(policy),
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	return &SMTPMailer{
		host:   cfg.Host,
		from:   cfg.From,
		opts:   opts,
		logger: logger,
	}, nil
}

func tlsPolicy(name string) (gomail.TLSPolicy, error) {
	switch name {
	case "mandatory":
		return gomail.TLSMandatory, nil
	case "opportunistic":
		return gomail.TLSOpportunistic, nil
	case "none":
		return gomail.NoTLS, nil
	default:
		return gomail.NoTLS, fmt.Errorf("invalid smtp tls policy: %s", name)
	}
}

// SendPasswordReset renders msg as plain text and delivers it. The deadline on
// ctx bounds the whole SMTP exchange.
func (m *SMTPMailer) SendPasswordReset(ctx context.Context, msg service.PasswordResetMessage) error {
	out := gomail.NewMsg(gomail.WithEncoding(gomail.NoEncoding))
	if err := out.From(m.from); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := out.To(msg.To); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	out.Subject(passwordResetSubject)
	out.SetBodyString(gomail.TypeTextPlain, msg.Body())

	client, err := gomail.NewClient(m.host, m.opts...)
	if err != nil {
		return fmt.Errorf("create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, out); err != nil {
		return fmt.Errorf("send password reset email: %w", err)
	}

	m.logger.Info("password reset email sent", "to", msg.To)
	return nil
}

var _ service.Mailer = (*SMTPMailer)(nil)
