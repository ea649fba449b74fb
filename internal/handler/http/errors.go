// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the transport layer itself.
var (
	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but does not carry a bearer token.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidGzip is returned when a gzip encoded request body cannot be
	// inflated.
	ErrInvalidGzip = errors.New("invalid gzip data")

	// ErrRouteNotFound is returned for unknown paths and unsupported methods.
	ErrRouteNotFound = errors.New("route not found")

	// ErrTooManyRequests is returned when a client exceeds its rate limit.
	ErrTooManyRequests = errors.New("too many requests")
)
