package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-ask-box/internal/store"
)

// Domain errors returned by services. Transport layers map each of them to a
// status code and an error kind; anything else is an internal failure.
var (
	// ErrMissingCredential is returned when a route requires a credential and
	// none was supplied.
	ErrMissingCredential = errors.New("missing credential")
	// ErrInvalidCredential is returned when a credential fails verification or
	// carries an identity the route policy does not accept.
	ErrInvalidCredential = errors.New("invalid credential")
	// ErrInvalidIdentity is returned when a verified principal names a record
	// that no longer exists.
	ErrInvalidIdentity = errors.New("principal does not match any record")
	// ErrUnauthorized is returned when the principal may not perform the
	// operation on the target.
	ErrUnauthorized = errors.New("unauthorized access")
	ErrInvalidID    = errors.New("invalid id")
	ErrNotFound     = errors.New("not found")
	// ErrInvalidTarget is returned when a question is addressed to a user that
	// does not exist.
	ErrInvalidTarget         = errors.New("target user does not exist")
	ErrUsernameInUse         = errors.New("username is already in use")
	ErrEmailInUse            = errors.New("email is already in use")
	ErrEmailAlreadyConfirmed = errors.New("email is already confirmed")
	ErrValidationFailed      = errors.New("validation failed")
	// ErrWrongCredentials is returned by login when the username/password
	// pair matches no account. It never tells which half was wrong.
	ErrWrongCredentials = errors.New("wrong credentials")
	ErrUserBanned       = errors.New("user is banned")
	ErrInternal         = errors.New("internal error")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrTokenCreationFailed   = errors.New("token creation failed")
)

// mapStoreError translates a repository error into a domain error. Unknown
// errors are wrapped in ErrInternal with the cause kept for logging.
func mapStoreError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrAdminNotFound),
		errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, store.ErrQuestionNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, store.ErrUsernameAlreadyExists):
		return ErrUsernameInUse
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return ErrEmailInUse
	case errors.Is(err, store.ErrReferenceNotFound):
		return ErrInvalidTarget
	case errors.Is(err, store.ErrNothingToUpdate):
		return fmt.Errorf("%w: %w", ErrValidationFailed, err)
	default:
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}
}

// validationError marks err as a request validation failure.
func validationError(err error) error {
	return fmt.Errorf("%w: %w", ErrValidationFailed, err)
}
