package validators

import (
	"context"
	"net/mail"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-ask-box/models"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// RequestValidator implements the Validator interface for every request body
// accepted by the directory and question services. Both value and pointer
// forms of each model are accepted.
type RequestValidator struct{}

// NewRequestValidator constructs a new RequestValidator and returns it as
// the Validator interface.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches on the dynamic type of obj. Optional fields restrict
// validation to the named subset; when omitted the type's default set is
// checked. Returns ErrUnsupportedType for unknown models.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		// only presence is checked on login, wrong values fail as bad credentials
		if strings.TrimSpace(value.Username) == "" || value.Password == "" {
			return ErrEmptyCredentials
		}
		return nil
	case *models.Credentials:
		return v.Validate(ctx, *value, fields...)
	case models.UserRegisterRequest:
		return v.validateFields(ctx, registerFields(value), fields, FieldUsername, FieldPassword, FieldEmail)
	case *models.UserRegisterRequest:
		return v.Validate(ctx, *value, fields...)
	case models.UserCreateRequest:
		return v.validateFields(ctx, userCreateFields(value), fields, FieldUsername, FieldPassword, FieldEmail, FieldProfileImgURL)
	case *models.UserCreateRequest:
		return v.Validate(ctx, *value, fields...)
	case models.UserUpdate:
		return v.validateFields(ctx, userUpdateFields(value), fields, FieldAny, FieldUsername, FieldPassword, FieldEmail, FieldProfileImgURL)
	case *models.UserUpdate:
		return v.Validate(ctx, *value, fields...)
	case models.AdminCreateRequest:
		return v.validateFields(ctx, adminCreateFields(value), fields, FieldUsername, FieldPassword, FieldEmail)
	case *models.AdminCreateRequest:
		return v.Validate(ctx, *value, fields...)
	case models.AdminUpdate:
		return v.validateFields(ctx, adminUpdateFields(value), fields, FieldAny, FieldUsername, FieldPassword, FieldEmail)
	case *models.AdminUpdate:
		return v.Validate(ctx, *value, fields...)
	case models.AskRequest:
		return v.validateFields(ctx, askFields(value), fields, FieldText, FieldToUser)
	case *models.AskRequest:
		return v.Validate(ctx, *value, fields...)
	case models.QuestionUpdate:
		return v.validateFields(ctx, questionUpdateFields(value), fields, FieldAny, FieldAnswer)
	case *models.QuestionUpdate:
		return v.Validate(ctx, *value, fields...)
	case models.EmailVerificationRequest:
		return v.validateFields(ctx, fieldValues{token: &value.Token}, fields, FieldToken)
	case *models.EmailVerificationRequest:
		return v.Validate(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

// fieldValues is the common view of a request body. Nil pointers are absent
// fields and are skipped, except for required ones which are set by the
// per-type adapters below.
type fieldValues struct {
	username      *string
	password      *string
	email         *string
	emailOptional bool
	profileImgURL *string
	text          *string
	toUser        *string
	answer        *string
	token         *string
	empty         bool
}

func (v *RequestValidator) validateFields(_ context.Context, values fieldValues, fields []string, defaults ...string) error {
	if len(fields) == 0 {
		fields = defaults
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldAny:
			if values.empty {
				err = ErrNoFieldsToUpdate
			}
		case FieldUsername:
			err = validateOptional(values.username, validateUsername)
		case FieldPassword:
			err = validateOptional(values.password, validatePassword)
		case FieldEmail:
			if values.emailOptional && values.email != nil && *values.email == "" {
				continue
			}
			err = validateOptional(values.email, validateEmail)
		case FieldProfileImgURL:
			err = validateOptional(values.profileImgURL, validateProfileImgURL)
		case FieldText:
			err = validateOptional(values.text, validateText)
		case FieldToUser:
			err = validateOptional(values.toUser, func(s string) error {
				if strings.TrimSpace(s) == "" {
					return ErrEmptyToUser
				}
				return nil
			})
		case FieldAnswer:
			err = validateOptional(values.answer, func(s string) error {
				if utf8.RuneCountInString(s) > maxAnswerLen {
					return ErrAnswerTooLong
				}
				return nil
			})
		case FieldToken:
			err = validateOptional(values.token, func(s string) error {
				if strings.TrimSpace(s) == "" {
					return ErrEmptyToken
				}
				return nil
			})
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func validateOptional(value *string, check func(string) error) error {
	if value == nil {
		return nil
	}
	return check(*value)
}

func validateUsername(s string) error {
	n := utf8.RuneCountInString(s)
	if n < minUsernameLen || n > maxUsernameLen || !usernamePattern.MatchString(s) {
		return ErrInvalidUsername
	}
	return nil
}

func validatePassword(s string) error {
	if utf8.RuneCountInString(s) < minPasswordLen || len(s) > maxPasswordLen {
		return ErrInvalidPassword
	}
	return nil
}

func validateEmail(s string) error {
	addr, err := mail.ParseAddress(s)
	// reject display-name forms such as "Alice <a@b.c>"
	if err != nil || addr.Address != s {
		return ErrInvalidEmail
	}
	return nil
}

func validateProfileImgURL(s string) error {
	if s == "" {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidProfileImgURL
	}
	return nil
}

func validateText(s string) error {
	if strings.TrimSpace(s) == "" {
		return ErrEmptyText
	}
	if utf8.RuneCountInString(s) > maxTextLen {
		return ErrTextTooLong
	}
	return nil
}

func registerFields(r models.UserRegisterRequest) fieldValues {
	return fieldValues{username: &r.Username, password: &r.Password, email: &r.Email}
}

func userCreateFields(r models.UserCreateRequest) fieldValues {
	return fieldValues{username: &r.Username, password: &r.Password, email: &r.Email, profileImgURL: &r.ProfileImgURL}
}

func userUpdateFields(u models.UserUpdate) fieldValues {
	return fieldValues{
		username:      u.Username,
		password:      u.Password,
		email:         u.Email,
		profileImgURL: u.ProfileImgURL,
		empty:         u.IsEmpty(),
	}
}

func adminCreateFields(r models.AdminCreateRequest) fieldValues {
	return fieldValues{username: &r.Username, password: &r.Password, email: &r.Email, emailOptional: true}
}

func adminUpdateFields(u models.AdminUpdate) fieldValues {
	return fieldValues{
		username:      u.Username,
		password:      u.Password,
		email:         u.Email,
		emailOptional: true,
		empty:         u.IsEmpty(),
	}
}

func askFields(r models.AskRequest) fieldValues {
	return fieldValues{text: &r.Text, toUser: &r.ToUser}
}

func questionUpdateFields(u models.QuestionUpdate) fieldValues {
	return fieldValues{answer: u.Answer, empty: u.IsEmpty()}
}
