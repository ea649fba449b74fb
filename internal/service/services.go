package service

import (
	"fmt"

	"github.com/MKhiriev/go-ask-box/internal/adapter"
	"github.com/MKhiriev/go-ask-box/internal/config"
	"github.com/MKhiriev/go-ask-box/internal/logger"
	"github.com/MKhiriev/go-ask-box/internal/store"
	"github.com/MKhiriev/go-ask-box/models"
)

type Services struct {
	PrincipalResolver PrincipalResolver
	PermissionService PermissionService
	VisibilityService VisibilityService
	QuestionService   QuestionService
	AdminService      AdminService
	UserService       UserService
	AppInfoService    AppInfoService
	HealthService     HealthService
}

func NewServices(storages *store.Storages, mailer adapter.Mailer, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	permissionService := NewPermissionService(storages.AdminRepository, storages.UserRepository, logger)
	visibilityService := NewVisibilityService()

	return &Services{
		PrincipalResolver: NewPrincipalResolver(cfg.App, logger),
		PermissionService: permissionService,
		VisibilityService: visibilityService,
		QuestionService: NewQuestionService(
			storages.QuestionRepository,
			storages.UserRepository,
			storages.QuestionCache,
			permissionService,
			visibilityService,
			logger,
		),
		AdminService:   NewAdminService(storages.AdminRepository, permissionService, cfg.App, logger),
		UserService: NewUserService(
			storages.UserRepository,
			storages.QuestionRepository,
			storages.QuestionCache,
			mailer,
			permissionService,
			cfg.App,
			logger,
		),
		AppInfoService: appInfoService,
		HealthService:  NewHealthService(storages, logger),
	}, nil
}
