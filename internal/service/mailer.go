package service

import (
	"context"
	"fmt"
	"log/slog"
)

// PasswordResetMessage is the content of a password recovery email
type PasswordResetMessage struct {
	To        string
	FirstName string
	Link      string
}

// Body renders the plain-text email body
func (m PasswordResetMessage) Body() string {
	return fmt.Sprintf("Hello %s,\n\n"+
		"We received a request to reset your password. "+
		"Click the link below to reset your password:\n\n"+
		"%s\n\n"+
		"If you did not request this, please ignore this email.\n\n"+
		"Best regards,\nEasyDinar Team", m.FirstName, m.Link)
}

// Mailer delivers outbound email
type Mailer interface {
	SendPasswordReset(ctx context.Context, msg PasswordResetMessage) error
}

// LogMailer records that an email would have been sent. It is meant for local
// development only and never writes the message body, which carries a live
// reset token.
type LogMailer struct {
	logger *slog.Logger
}

// NewLogMailer creates a new LogMailer
func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) SendPasswordReset(ctx context.Context, msg PasswordResetMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.logger.Warn("smtp is not configured, password reset email dropped", "to", msg.To)
	return nil
}

var _ Mailer = (*LogMailer)(nil)
