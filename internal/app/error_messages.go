// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-ask-box server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs. Details of the failure are only logged.
	MsgInternalServerError = "Internal server error"

	// MsgMissingToken is returned when a route requires a credential and the
	// request carries none.
	MsgMissingToken = "Missing token"

	// MsgInvalidToken is returned when a credential fails verification or
	// does not carry the identity the route requires.
	MsgInvalidToken = "Invalid token"

	// MsgInvalidIdentity is returned when a verified credential names an
	// account that no longer exists.
	MsgInvalidIdentity = "Invalid token"

	// MsgUnauthorizedAccess is returned when the principal may not perform
	// the operation on the target.
	MsgUnauthorizedAccess = "Unauthorized access"

	// MsgInvalidCredentials is returned when a username/password pair does
	// not match any account.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgUserIsBanned is returned when a banned user tries to log in.
	MsgUserIsBanned = "User is banned"

	// MsgInvalidID is returned when a path or body identifier is not a
	// well-formed id.
	MsgInvalidID = "Invalid ID"

	// MsgNotFound is returned when the addressed record does not exist.
	MsgNotFound = "Not found"

	// MsgInvalidTarget is returned when a question is addressed to a user
	// that does not exist.
	MsgInvalidTarget = "User to ask was not found"

	// MsgUsernameInUse is returned when a create or update collides with an
	// existing username.
	MsgUsernameInUse = "Username is already in use"

	// MsgEmailInUse is returned when a create or update collides with an
	// existing e-mail.
	MsgEmailInUse = "Email is already in use"

	// MsgEmailAlreadyConfirmed is returned when a confirmation token is
	// redeemed for an already confirmed address.
	MsgEmailAlreadyConfirmed = "Email is already confirmed"

	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "Invalid data provided"

	// MsgRouteNotFound is returned for unknown paths and unsupported methods.
	MsgRouteNotFound = "Route not found"

	// MsgTooManyRequests is returned when a client exceeds the rate limit.
	MsgTooManyRequests = "Too many requests"

	// MsgQuestionSent acknowledges an accepted question.
	MsgQuestionSent = "Question sent"

	// MsgUserRegistered acknowledges a registration. The confirmation link
	// is delivered by e-mail.
	MsgUserRegistered = "User registered, check your email to confirm the address"

	// MsgEmailConfirmed acknowledges a redeemed confirmation token.
	MsgEmailConfirmed = "Email confirmed"
)
