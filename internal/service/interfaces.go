package service

import (
	"context"

	"github.com/MKhiriev/go-ask-box/internal/config"
	"github.com/MKhiriev/go-ask-box/models"
)

// PrincipalResolver turns a raw request credential into a principal under
// the route policy.
type PrincipalResolver interface {
	// Resolve returns Guest for an empty credential when the policy allows
	// it, ErrMissingCredential when it does not, and ErrInvalidCredential for
	// anything that fails verification or does not fit the policy.
	Resolve(ctx context.Context, credential string, policy models.Policy) (models.Principal, error)
}

// PermissionService decides whether a principal may perform an operation on
// a target. It returns nil, ErrUnauthorized or ErrInvalidIdentity.
type PermissionService interface {
	Evaluate(ctx context.Context, principal models.Principal, op models.Operation, target models.Resource) error
}

// VisibilityService computes what a viewer may see of a question.
type VisibilityService interface {
	// ProjectQuestion returns ErrUnauthorized when q is hidden from viewer.
	ProjectQuestion(q models.Question, viewer models.Principal) (models.QuestionView, error)
	// RedactQuestion projects q for listings that already selected only
	// visible questions.
	RedactQuestion(q models.Question) models.QuestionView
}

type QuestionService interface {
	// Ask persists a new hidden question. The caller gets no entity back so
	// that asking reveals nothing about the receiver.
	Ask(ctx context.Context, principal models.Principal, req models.AskRequest) error
	Get(ctx context.Context, principal models.Principal, id string) (models.QuestionView, error)
	ListByUsername(ctx context.Context, username string) ([]models.QuestionView, error)
	ListForUser(ctx context.Context, principal models.Principal, userID string) (models.UserQuestions, error)
	Update(ctx context.Context, principal models.Principal, id string, update models.QuestionUpdate) (models.QuestionView, error)
	Delete(ctx context.Context, principal models.Principal, id string) (models.QuestionView, error)
}

type AdminService interface {
	Login(ctx context.Context, credentials models.Credentials) (models.Token, error)
	Me(ctx context.Context, principal models.Principal) (models.Admin, error)
	List(ctx context.Context, principal models.Principal) ([]models.Admin, error)
	Get(ctx context.Context, principal models.Principal, id string) (models.Admin, error)
	Create(ctx context.Context, principal models.Principal, req models.AdminCreateRequest) (models.Admin, error)
	Update(ctx context.Context, principal models.Principal, id string, update models.AdminUpdate) (models.Admin, error)
	Delete(ctx context.Context, principal models.Principal, id string) (models.Admin, error)
	// Bootstrap creates the configured super admin when no admin exists.
	Bootstrap(ctx context.Context, cfg config.Bootstrap) error
}

type UserService interface {
	Register(ctx context.Context, req models.UserRegisterRequest) error
	VerifyEmail(ctx context.Context, req models.EmailVerificationRequest) error
	Login(ctx context.Context, credentials models.Credentials) (models.Token, error)
	Me(ctx context.Context, principal models.Principal) (models.User, error)
	List(ctx context.Context, principal models.Principal) ([]models.User, error)
	Get(ctx context.Context, principal models.Principal, id string) (models.User, error)
	Profile(ctx context.Context, username string) (models.PublicProfile, error)
	Create(ctx context.Context, principal models.Principal, req models.UserCreateRequest) (models.User, error)
	Update(ctx context.Context, principal models.Principal, id string, update models.UserUpdate) (models.User, error)
	Delete(ctx context.Context, principal models.Principal, id string) (models.User, error)
	Ban(ctx context.Context, principal models.Principal, id string, req models.BanRequest) (models.User, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetVersionInfo(ctx context.Context) models.VersionInfo
}

// HealthService reports the state of the backing services.
type HealthService interface {
	Check(ctx context.Context) models.HealthStatus
}

// Pinger is implemented by the storage aggregate.
type Pinger interface {
	PingStore(ctx context.Context) error
	PingCache(ctx context.Context) error
}
