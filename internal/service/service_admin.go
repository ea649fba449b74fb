package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-ask-box/internal/config"
	"github.com/MKhiriev/go-ask-box/internal/logger"
	"github.com/MKhiriev/go-ask-box/internal/store"
	"github.com/MKhiriev/go-ask-box/internal/utils"
	"github.com/MKhiriev/go-ask-box/internal/validators"
	"github.com/MKhiriev/go-ask-box/models"
)

// adminService manages the administrator directory.
type adminService struct {
	adminRepository store.AdminRepository
	permissions     PermissionService
	validator       validators.Validator
	ids             idGenerator

	// passwordHashKey is the pepper mixed into every password hash.
	passwordHashKey string

	// tokenSignKey is the HMAC secret used to sign session tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	tokenIssuer string

	// tokenDuration controls how long a session token remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

func NewAdminService(adminRepository store.AdminRepository, permissions PermissionService, cfg config.App, logger *logger.Logger) AdminService {
	return &adminService{
		adminRepository: adminRepository,
		permissions:     permissions,
		validator:       validators.NewRequestValidator(),
		ids:             utils.NewUUIDGenerator(),
		passwordHashKey: cfg.PasswordHashKey,
		tokenSignKey:    cfg.TokenSignKey,
		tokenIssuer:     cfg.TokenIssuer,
		tokenDuration:   cfg.TokenDuration,
		logger:          logger,
	}
}

// Login checks the credentials and issues an admin session token. An
// unknown username and a wrong password are indistinguishable.
func (s *adminService) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, credentials); err != nil {
		return models.Token{}, validationError(err)
	}

	admin, err := s.adminRepository.FindAdminByUsername(ctx, credentials.Username)
	if errors.Is(err, store.ErrAdminNotFound) {
		return models.Token{}, ErrWrongCredentials
	}
	if err != nil {
		log.Err(err).Str("username", credentials.Username).Msg("admin search by username failed")
		return models.Token{}, mapStoreError(err)
	}

	if err = utils.ComparePassword(admin.PasswordHash, credentials.Password, s.passwordHashKey); err != nil {
		if errors.Is(err, utils.ErrPasswordMismatch) {
			return models.Token{}, ErrWrongCredentials
		}
		return models.Token{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	token, err := utils.GenerateJWTToken(s.tokenIssuer, models.TokenKindAdmin, admin.ID, s.tokenDuration, s.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

func (s *adminService) Me(ctx context.Context, principal models.Principal) (models.Admin, error) {
	if !principal.IsAdmin() {
		return models.Admin{}, ErrUnauthorized
	}

	admin, err := s.adminRepository.FindAdminByID(ctx, principal.ID)
	if errors.Is(err, store.ErrAdminNotFound) {
		return models.Admin{}, ErrInvalidIdentity
	}
	if err != nil {
		return models.Admin{}, mapStoreError(err)
	}

	return admin, nil
}

func (s *adminService) List(ctx context.Context, principal models.Principal) ([]models.Admin, error) {
	if err := s.permissions.Evaluate(ctx, principal, models.OpListAdmins, models.Resource{}); err != nil {
		return nil, err
	}

	admins, err := s.adminRepository.ListAdmins(ctx)
	if err != nil {
		return nil, mapStoreError(err)
	}

	return admins, nil
}

func (s *adminService) Get(ctx context.Context, principal models.Principal, id string) (models.Admin, error) {
	if !utils.IsValidID(id) {
		return models.Admin{}, ErrInvalidID
	}
	if err := s.permissions.Evaluate(ctx, principal, models.OpReadAdmin, models.Resource{OwnerID: id}); err != nil {
		return models.Admin{}, err
	}

	admin, err := s.adminRepository.FindAdminByID(ctx, id)
	if err != nil {
		return models.Admin{}, mapStoreError(err)
	}

	return admin, nil
}

func (s *adminService) Create(ctx context.Context, principal models.Principal, req models.AdminCreateRequest) (models.Admin, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Admin{}, validationError(err)
	}
	if err := s.permissions.Evaluate(ctx, principal, models.OpCreateAdmin, models.Resource{}); err != nil {
		return models.Admin{}, err
	}

	return s.create(ctx, req)
}

// Update applies a partial update. Changing permissions requires super
// admin even on one's own record.
func (s *adminService) Update(ctx context.Context, principal models.Principal, id string, update models.AdminUpdate) (models.Admin, error) {
	log := logger.FromContext(ctx)

	if !utils.IsValidID(id) {
		return models.Admin{}, ErrInvalidID
	}
	if err := s.validator.Validate(ctx, update); err != nil {
		return models.Admin{}, validationError(err)
	}
	if err := s.permissions.Evaluate(ctx, principal, models.OpUpdateAdmin, models.Resource{OwnerID: id}); err != nil {
		return models.Admin{}, err
	}
	if update.Permissions != nil {
		if err := s.permissions.Evaluate(ctx, principal, models.OpChangeAdminPermissions, models.Resource{OwnerID: id}); err != nil {
			return models.Admin{}, err
		}
	}

	patch := models.AdminPatch{
		Username:    update.Username,
		Email:       update.Email,
		Permissions: update.Permissions,
		UpdateDate:  time.Now().UTC(),
	}
	if update.Password != nil {
		hash, err := utils.HashPassword(*update.Password, s.passwordHashKey)
		if err != nil {
			return models.Admin{}, fmt.Errorf("%w: %w", ErrInternal, err)
		}
		patch.PasswordHash = &hash
	}

	admin, err := s.adminRepository.UpdateAdmin(ctx, id, patch)
	if err != nil {
		log.Err(err).Str("admin_id", id).Msg("admin update ended with error")
		return models.Admin{}, mapStoreError(err)
	}

	return admin, nil
}

func (s *adminService) Delete(ctx context.Context, principal models.Principal, id string) (models.Admin, error) {
	if !utils.IsValidID(id) {
		return models.Admin{}, ErrInvalidID
	}
	if err := s.permissions.Evaluate(ctx, principal, models.OpDeleteAdmin, models.Resource{OwnerID: id}); err != nil {
		return models.Admin{}, err
	}

	admin, err := s.adminRepository.DeleteAdmin(ctx, id)
	if err != nil {
		return models.Admin{}, mapStoreError(err)
	}

	return admin, nil
}

// Bootstrap seeds the configured super admin into an empty directory. It is
// a no-op when no bootstrap username is configured or any admin exists.
func (s *adminService) Bootstrap(ctx context.Context, cfg config.Bootstrap) error {
	if cfg.AdminUsername == "" {
		return nil
	}

	count, err := s.adminRepository.CountAdmins(ctx)
	if err != nil {
		return fmt.Errorf("counting admins failed: %w", err)
	}
	if count > 0 {
		s.logger.Debug().Int64("admins", count).Msg("admin directory is not empty, bootstrap skipped")
		return nil
	}

	req := models.AdminCreateRequest{
		Username:    cfg.AdminUsername,
		Password:    cfg.AdminPassword,
		Email:       cfg.AdminEmail,
		Permissions: models.AdminPermissions{SuperAdmin: true, ManageUsers: true, ManagePosts: true},
	}
	if err = s.validator.Validate(ctx, req); err != nil {
		return validationError(err)
	}

	admin, err := s.create(ctx, req)
	if errors.Is(err, ErrUsernameInUse) {
		// another instance won the race
		return nil
	}
	if err != nil {
		return fmt.Errorf("bootstrap admin creation failed: %w", err)
	}

	s.logger.Info().Str("admin_id", admin.ID).Str("username", admin.Username).Msg("bootstrap super admin created")
	return nil
}

func (s *adminService) create(ctx context.Context, req models.AdminCreateRequest) (models.Admin, error) {
	log := logger.FromContext(ctx)

	hash, err := utils.HashPassword(req.Password, s.passwordHashKey)
	if err != nil {
		return models.Admin{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	now := time.Now().UTC()
	admin, err := s.adminRepository.CreateAdmin(ctx, models.Admin{
		ID:           s.ids.Generate(),
		Username:     req.Username,
		PasswordHash: hash,
		Email:        req.Email,
		Permissions:  req.Permissions,
		CreateDate:   now,
		UpdateDate:   now,
	})
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("admin creation ended with error")
		return models.Admin{}, mapStoreError(err)
	}

	return admin, nil
}
