package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-ask-box/models"
)

func strPtr(s string) *string { return &s }

func TestRequestValidator_UserRegisterRequest(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	valid := models.UserRegisterRequest{Username: "alice_01", Password: "secret1", Email: "alice@example.com"}

	tests := []struct {
		name    string
		mutate  func(r *models.UserRegisterRequest)
		wantErr error
	}{
		{name: "valid", mutate: func(*models.UserRegisterRequest) {}},
		{name: "short username", mutate: func(r *models.UserRegisterRequest) { r.Username = "al" }, wantErr: ErrInvalidUsername},
		{name: "username with space", mutate: func(r *models.UserRegisterRequest) { r.Username = "al ice" }, wantErr: ErrInvalidUsername},
		{name: "long username", mutate: func(r *models.UserRegisterRequest) { r.Username = strings.Repeat("a", 33) }, wantErr: ErrInvalidUsername},
		{name: "short password", mutate: func(r *models.UserRegisterRequest) { r.Password = "12345" }, wantErr: ErrInvalidPassword},
		{name: "long password", mutate: func(r *models.UserRegisterRequest) { r.Password = strings.Repeat("p", 73) }, wantErr: ErrInvalidPassword},
		{name: "bad email", mutate: func(r *models.UserRegisterRequest) { r.Email = "alice" }, wantErr: ErrInvalidEmail},
		{name: "display name email", mutate: func(r *models.UserRegisterRequest) { r.Email = "Alice <alice@example.com>" }, wantErr: ErrInvalidEmail},
		{name: "empty email", mutate: func(r *models.UserRegisterRequest) { r.Email = "" }, wantErr: ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)

			err := v.Validate(ctx, r)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRequestValidator_PointerForms(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, &models.AskRequest{Text: "hi", ToUser: "u1"}))
	assert.ErrorIs(t, v.Validate(ctx, &models.AskRequest{Text: " ", ToUser: "u1"}), ErrEmptyText)
}

func TestRequestValidator_AskRequest(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.AskRequest{Text: "hi"}), ErrEmptyToUser)
	assert.ErrorIs(t, v.Validate(ctx, models.AskRequest{Text: strings.Repeat("x", maxTextLen+1), ToUser: "u1"}), ErrTextTooLong)
	// multi-byte text is measured in runes
	assert.NoError(t, v.Validate(ctx, models.AskRequest{Text: strings.Repeat("é", maxTextLen), ToUser: "u1"}))
}

func TestRequestValidator_QuestionUpdate(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.QuestionUpdate{}), ErrNoFieldsToUpdate)

	displayable := true
	assert.NoError(t, v.Validate(ctx, models.QuestionUpdate{IsDisplayable: &displayable}))
	assert.NoError(t, v.Validate(ctx, models.QuestionUpdate{Answer: strPtr("")}))
	assert.ErrorIs(t, v.Validate(ctx, models.QuestionUpdate{Answer: strPtr(strings.Repeat("a", maxAnswerLen+1))}), ErrAnswerTooLong)
}

func TestRequestValidator_UserUpdate(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.UserUpdate{}), ErrNoFieldsToUpdate)
	assert.NoError(t, v.Validate(ctx, models.UserUpdate{Settings: &models.UserSettings{}}))
	assert.ErrorIs(t, v.Validate(ctx, models.UserUpdate{Email: strPtr("nope")}), ErrInvalidEmail)
	assert.ErrorIs(t, v.Validate(ctx, models.UserUpdate{ProfileImgURL: strPtr("ftp://x/y.png")}), ErrInvalidProfileImgURL)
	assert.NoError(t, v.Validate(ctx, models.UserUpdate{ProfileImgURL: strPtr("")}))
	assert.NoError(t, v.Validate(ctx, models.UserUpdate{ProfileImgURL: strPtr("https://cdn.example.com/a.png")}))
}

func TestRequestValidator_AdminRequests(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	// admin e-mail is optional
	assert.NoError(t, v.Validate(ctx, models.AdminCreateRequest{Username: "root", Password: "secret1"}))
	assert.ErrorIs(t, v.Validate(ctx, models.AdminCreateRequest{Username: "root", Password: "secret1", Email: "x"}), ErrInvalidEmail)

	assert.ErrorIs(t, v.Validate(ctx, models.AdminUpdate{}), ErrNoFieldsToUpdate)
	assert.NoError(t, v.Validate(ctx, models.AdminUpdate{Email: strPtr("")}))
	assert.NoError(t, v.Validate(ctx, models.AdminUpdate{Permissions: &models.AdminPermissions{ManagePosts: true}}))
}

func TestRequestValidator_Credentials(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.Credentials{Username: "x", Password: "y"}))
	assert.ErrorIs(t, v.Validate(ctx, models.Credentials{Username: "x"}), ErrEmptyCredentials)
	assert.ErrorIs(t, v.Validate(ctx, &models.Credentials{Password: "y"}), ErrEmptyCredentials)
}

func TestRequestValidator_EmailVerification(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.EmailVerificationRequest{}), ErrEmptyToken)
	assert.NoError(t, v.Validate(ctx, models.EmailVerificationRequest{Token: "t"}))
}

func TestRequestValidator_FieldScoping(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	r := models.UserRegisterRequest{Username: "alice", Password: "x", Email: "bad"}
	assert.NoError(t, v.Validate(ctx, r, FieldUsername))
	assert.ErrorIs(t, v.Validate(ctx, r, FieldUsername, FieldEmail), ErrInvalidEmail)
	assert.ErrorIs(t, v.Validate(ctx, r, "unknown"), ErrUnknownField)
}

func TestRequestValidator_UnsupportedType(t *testing.T) {
	assert.ErrorIs(t, NewRequestValidator().Validate(context.Background(), 42), ErrUnsupportedType)
}
