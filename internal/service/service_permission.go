// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-ask-box/internal/logger"
	"github.com/MKhiriev/go-ask-box/internal/store"
	"github.com/MKhiriev/go-ask-box/models"
)

// permissionRule lists every way an operation can be granted. A principal
// passes when any of the enabled grants match.
type permissionRule struct {
	// capability is checked against the admin permission set when
	// requiresCapability is set.
	capability         models.Capability
	requiresCapability bool

	// ownerKind is the principal kind that may act on its own record,
	// identified by Resource.OwnerID. Guest disables the grant.
	ownerKind models.PrincipalKind

	// receiver and asker grant access to the user a question was addressed
	// to and the user who asked it.
	receiver bool
	asker    bool
}

var permissionRules = map[models.Operation]permissionRule{
	models.OpListAdmins:             {capability: models.CapabilitySuperAdmin, requiresCapability: true},
	models.OpCreateAdmin:            {capability: models.CapabilitySuperAdmin, requiresCapability: true},
	models.OpReadAdmin:              {capability: models.CapabilitySuperAdmin, requiresCapability: true, ownerKind: models.AdminPrincipal},
	models.OpUpdateAdmin:            {capability: models.CapabilitySuperAdmin, requiresCapability: true, ownerKind: models.AdminPrincipal},
	models.OpDeleteAdmin:            {capability: models.CapabilitySuperAdmin, requiresCapability: true, ownerKind: models.AdminPrincipal},
	models.OpChangeAdminPermissions: {capability: models.CapabilitySuperAdmin, requiresCapability: true},

	models.OpListUsers:  {capability: models.CapabilityManageUsers, requiresCapability: true},
	models.OpCreateUser: {capability: models.CapabilityManageUsers, requiresCapability: true},
	models.OpBanUser:    {capability: models.CapabilityManageUsers, requiresCapability: true},
	models.OpReadUser:   {capability: models.CapabilityManageUsers, requiresCapability: true, ownerKind: models.UserPrincipal},
	models.OpUpdateUser: {capability: models.CapabilityManageUsers, requiresCapability: true, ownerKind: models.UserPrincipal},
	models.OpDeleteUser: {capability: models.CapabilityManageUsers, requiresCapability: true, ownerKind: models.UserPrincipal},

	models.OpListUserQuestions: {capability: models.CapabilityManageUsers, requiresCapability: true, ownerKind: models.UserPrincipal},
	models.OpUpdateQuestion:    {receiver: true},
	models.OpDeleteQuestion:    {capability: models.CapabilityManagePosts, requiresCapability: true, receiver: true, asker: true},
}

type permissionService struct {
	adminRepository store.AdminRepository
	userRepository  store.UserRepository

	logger *logger.Logger
}

// NewPermissionService returns the evaluator. It reads the principal record
// on every call so that deleted accounts and revoked capabilities take
// effect immediately.
func NewPermissionService(adminRepository store.AdminRepository, userRepository store.UserRepository, logger *logger.Logger) PermissionService {
	return &permissionService{
		adminRepository: adminRepository,
		userRepository:  userRepository,
		logger:          logger,
	}
}

func (p *permissionService) Evaluate(ctx context.Context, principal models.Principal, op models.Operation, target models.Resource) error {
	log := logger.FromContext(ctx)

	rule, ok := permissionRules[op]
	if !ok {
		return fmt.Errorf("%w: unknown operation %q", ErrInternal, op)
	}

	switch principal.Kind {
	case models.AdminPrincipal:
		admin, err := p.adminRepository.FindAdminByID(ctx, principal.ID)
		if err != nil {
			return identityError(err)
		}
		if rule.requiresCapability && admin.Permissions.Has(rule.capability) {
			return nil
		}
	case models.UserPrincipal:
		if _, err := p.userRepository.FindUserByID(ctx, principal.ID); err != nil {
			return identityError(err)
		}
		if rule.receiver && target.ReceiverID != "" && target.ReceiverID == principal.ID {
			return nil
		}
		if rule.asker && target.AskerID != "" && target.AskerID == principal.ID {
			return nil
		}
	default:
		return ErrUnauthorized
	}

	if rule.ownerKind == principal.Kind && target.OwnerID != "" && target.OwnerID == principal.ID {
		return nil
	}

	log.Debug().
		Str("principal", principal.Kind.String()).
		Str("principal_id", principal.ID).
		Str("operation", string(op)).
		Msg("permission denied")

	return ErrUnauthorized
}

// identityError maps a failed principal lookup. A missing record means the
// token outlived its account.
func identityError(err error) error {
	if errors.Is(err, store.ErrAdminNotFound) || errors.Is(err, store.ErrUserNotFound) {
		return ErrInvalidIdentity
	}
	return fmt.Errorf("%w: %w", ErrInternal, err)
}
