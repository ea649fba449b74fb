package store

import (
	"context"

	"github.com/MKhiriev/go-ask-box/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AdminRepository persists administrator accounts. Username and e-mail are
// unique; violations surface as [ErrUsernameAlreadyExists] and
// [ErrEmailAlreadyExists].
type AdminRepository interface {
	CreateAdmin(ctx context.Context, admin models.Admin) (models.Admin, error)
	FindAdminByID(ctx context.Context, id string) (models.Admin, error)
	FindAdminByUsername(ctx context.Context, username string) (models.Admin, error)
	ListAdmins(ctx context.Context) ([]models.Admin, error)
	CountAdmins(ctx context.Context) (int64, error)
	// UpdateAdmin applies patch and returns the updated record.
	UpdateAdmin(ctx context.Context, id string, patch models.AdminPatch) (models.Admin, error)
	// DeleteAdmin removes the admin and returns the deleted record.
	DeleteAdmin(ctx context.Context, id string) (models.Admin, error)
}

// UserRepository persists regular user accounts. Username and e-mail are
// unique; violations surface as [ErrUsernameAlreadyExists] and
// [ErrEmailAlreadyExists].
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, id string) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	// UpdateUser applies patch and returns the updated record.
	UpdateUser(ctx context.Context, id string, patch models.UserPatch) (models.User, error)
	// DeleteUser removes the user together with the questions it received.
	// Questions it asked are kept with the asker detached.
	DeleteUser(ctx context.Context, id string) (models.User, error)
}

// QuestionRepository persists questions.
type QuestionRepository interface {
	CreateQuestion(ctx context.Context, question models.Question) (models.Question, error)
	FindQuestionByID(ctx context.Context, id string) (models.Question, error)
	// ListQuestions returns the questions matching filter, newest first.
	ListQuestions(ctx context.Context, filter models.QuestionFilter) ([]models.Question, error)
	UpdateQuestion(ctx context.Context, id string, update models.QuestionUpdate) (models.Question, error)
	// DeleteQuestion removes the question and returns the deleted record.
	DeleteQuestion(ctx context.Context, id string) (models.Question, error)
}

// QuestionCache keeps the public projection of a user's displayable
// questions keyed by the receiver id.
type QuestionCache interface {
	// GetProfileQuestions returns [ErrCacheMiss] when nothing is cached.
	GetProfileQuestions(ctx context.Context, userID string) ([]models.QuestionView, error)
	SetProfileQuestions(ctx context.Context, userID string, questions []models.QuestionView) error
	InvalidateProfileQuestions(ctx context.Context, userID string) error
	Ping(ctx context.Context) error
	Close() error
}

// backend is the connection lifecycle shared by every store driver.
type backend interface {
	Ping(ctx context.Context) error
	Close() error
}
