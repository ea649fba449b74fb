// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides outbound integrations of the go-ask-box server.
//
// The primary abstraction is [Mailer], which decouples the user directory
// from the way confirmation tokens are delivered. The package ships an
// HTTP implementation talking to a mail relay ([NewHTTPMailer]) and a
// logging implementation ([NewLogMailer]) used when no relay is configured.
//
// Relay responses are mapped from HTTP status codes by mapHTTPError so that
// callers can use [errors.Is] for transport-agnostic error handling.
package adapter

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/mailer_mock.go -package=mock

// Mailer delivers e-mail confirmation tokens to newly registered users.
type Mailer interface {
	// SendEmailConfirmation delivers token to email. The token is the only
	// proof of ownership of the address and must not be logged by callers.
	SendEmailConfirmation(ctx context.Context, email, username, token string) error
}
