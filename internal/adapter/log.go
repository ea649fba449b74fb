package adapter

import (
	"context"

	"github.com/MKhiriev/go-ask-box/internal/logger"
)

type logMailer struct {
	logger *logger.Logger
}

// NewLogMailer returns a [Mailer] that only records deliveries at debug level.
// The token itself is never written.
func NewLogMailer(logger *logger.Logger) Mailer {
	return &logMailer{logger: logger}
}

func (m *logMailer) SendEmailConfirmation(_ context.Context, email, username, token string) error {
	m.logger.Debug().
		Str("func", "*logMailer.SendEmailConfirmation").
		Str("email", email).
		Str("username", username).
		Int("token_len", len(token)).
		Msg("no mail relay configured, confirmation mail not sent")
	return nil
}
