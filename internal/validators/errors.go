package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyCredentials     = errors.New("username and password are required")
	ErrInvalidUsername      = errors.New("username must be 3-32 letters, digits, '.', '_' or '-'")
	ErrInvalidPassword      = errors.New("password must be 6-72 characters")
	ErrInvalidEmail         = errors.New("invalid email address")
	ErrInvalidProfileImgURL = errors.New("profile image url must be an absolute http(s) url")
	ErrEmptyText            = errors.New("question text is required")
	ErrTextTooLong          = errors.New("question text is too long")
	ErrAnswerTooLong        = errors.New("answer is too long")
	ErrEmptyToUser          = errors.New("to_user is required")
	ErrEmptyToken           = errors.New("token is required")
	ErrNoFieldsToUpdate     = errors.New("at least one field must be provided for update")
)
