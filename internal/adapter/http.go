package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-ask-box/internal/config"
	"github.com/MKhiriev/go-ask-box/internal/logger"
	"github.com/MKhiriev/go-ask-box/internal/utils"
)

const confirmationPath = "/api/mail/confirmation"

// confirmationMail is the body accepted by the mail relay.
type confirmationMail struct {
	To       string `json:"to"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

type httpMailer struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPMailer constructs a [Mailer] that POSTs confirmation mails to the
// relay at adapterCfg.HTTPAddress. Returns an error if the address is empty or
// cannot be parsed as a valid URL.
func NewHTTPMailer(adapterCfg config.Adapter, logger *logger.Logger) (Mailer, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	return &httpMailer{client: client, logger: logger}, nil
}

// NewMailer picks the relay mailer when an address is configured and the
// logging mailer otherwise.
func NewMailer(adapterCfg config.Adapter, logger *logger.Logger) (Mailer, error) {
	if strings.TrimSpace(adapterCfg.HTTPAddress) == "" {
		return NewLogMailer(logger), nil
	}

	return NewHTTPMailer(adapterCfg, logger)
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SendEmailConfirmation implements [Mailer]. It POSTs the mail to
// POST /api/mail/confirmation and maps non-2xx answers with mapHTTPError.
func (m *httpMailer) SendEmailConfirmation(ctx context.Context, email, username, token string) error {
	resp, err := m.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(confirmationMail{To: email, Username: username, Token: token}).
		Post(confirmationPath)
	if err != nil {
		return fmt.Errorf("send confirmation request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	logger.FromContext(ctx).Debug().Str("func", "*httpMailer.SendEmailConfirmation").Str("username", username).Msg("confirmation mail handed to relay")
	return nil
}
