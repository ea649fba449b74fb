package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("mail relay rejected the request")
	ErrUnauthorized        = errors.New("mail relay unauthorized")
	ErrForbidden           = errors.New("mail relay forbidden")
	ErrNotFound            = errors.New("mail relay endpoint not found")
	ErrConflict            = errors.New("mail relay conflict")
	ErrBadGateway          = errors.New("mail relay bad gateway")
	ErrInternalServerError = errors.New("mail relay internal error")
)
