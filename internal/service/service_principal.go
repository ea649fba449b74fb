package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ask-box/internal/config"
	"github.com/MKhiriev/go-ask-box/internal/logger"
	"github.com/MKhiriev/go-ask-box/internal/utils"
	"github.com/MKhiriev/go-ask-box/models"
)

// principalResolver verifies signed session tokens. It does not look the
// principal up; existence is checked when permissions are evaluated.
type principalResolver struct {
	// tokenSignKey is the HMAC secret the session tokens are signed with.
	tokenSignKey string

	// tokenIssuer is the "iss" claim every accepted token must carry.
	tokenIssuer string

	logger *logger.Logger
}

func NewPrincipalResolver(cfg config.App, logger *logger.Logger) PrincipalResolver {
	return &principalResolver{
		tokenSignKey: cfg.TokenSignKey,
		tokenIssuer:  cfg.TokenIssuer,
		logger:       logger,
	}
}

func (r *principalResolver) Resolve(ctx context.Context, credential string, policy models.Policy) (models.Principal, error) {
	log := logger.FromContext(ctx)

	if credential == "" {
		if policy.AllowsGuest() {
			return models.Guest(), nil
		}
		return models.Principal{}, ErrMissingCredential
	}

	claims, err := utils.ValidateAndParseJWTToken(credential, r.tokenSignKey, r.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Str("policy", policy.String()).Msg("credential rejected")
		return models.Principal{}, fmt.Errorf("%w: %w", ErrInvalidCredential, err)
	}

	var kind models.PrincipalKind
	switch claims.Kind {
	case models.TokenKindAdmin:
		kind = models.AdminPrincipal
	case models.TokenKindUser:
		kind = models.UserPrincipal
	default:
		// confirmation tokens never authenticate a request
		return models.Principal{}, fmt.Errorf("%w: token kind %q", ErrInvalidCredential, claims.Kind)
	}

	if !policy.Accepts(kind) {
		return models.Principal{}, fmt.Errorf("%w: %s token not accepted by %s", ErrInvalidCredential, kind, policy)
	}
	if !utils.IsValidID(claims.Subject) {
		return models.Principal{}, fmt.Errorf("%w: malformed subject", ErrInvalidCredential)
	}

	return models.Principal{Kind: kind, ID: claims.Subject}, nil
}
