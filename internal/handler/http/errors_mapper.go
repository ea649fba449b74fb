package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-ask-box/internal/app"
	"github.com/MKhiriev/go-ask-box/internal/logger"
	"github.com/MKhiriev/go-ask-box/internal/service"
	"github.com/MKhiriev/go-ask-box/internal/utils"
	"github.com/MKhiriev/go-ask-box/models"
)

// Error kinds reported in the "kind" field of an error response.
const (
	kindMissingCredential = "missing_credential"
	kindInvalidCredential = "invalid_credential"
	kindInvalidIdentity   = "invalid_identity"
	kindUnauthorized      = "unauthorized"
	kindInvalidID         = "invalid_id"
	kindNotFound          = "not_found"
	kindInvalidTarget     = "invalid_target"
	kindConflict          = "conflict"
	kindValidation        = "validation_failed"
	kindWrongCredentials  = "wrong_credentials"
	kindBanned            = "banned"
	kindRateLimited       = "rate_limited"
	kindInternal          = "internal"
)

type errorRule struct {
	target error
	status int
	kind   string
	// msg is the client-facing message. Empty means the error text itself
	// is safe to show.
	msg string
}

// errorRules is matched in order, the first rule the error wraps wins.
var errorRules = []errorRule{
	{target: service.ErrMissingCredential, status: http.StatusBadRequest, kind: kindMissingCredential, msg: app.MsgMissingToken},
	{target: ErrInvalidAuthorizationHeader, status: http.StatusUnauthorized, kind: kindInvalidCredential, msg: app.MsgInvalidToken},
	{target: service.ErrInvalidCredential, status: http.StatusUnauthorized, kind: kindInvalidCredential, msg: app.MsgInvalidToken},
	{target: service.ErrInvalidIdentity, status: http.StatusUnauthorized, kind: kindInvalidIdentity, msg: app.MsgInvalidIdentity},
	{target: service.ErrWrongCredentials, status: http.StatusUnauthorized, kind: kindWrongCredentials, msg: app.MsgInvalidCredentials},
	{target: service.ErrUserBanned, status: http.StatusForbidden, kind: kindBanned, msg: app.MsgUserIsBanned},
	{target: service.ErrUnauthorized, status: http.StatusForbidden, kind: kindUnauthorized, msg: app.MsgUnauthorizedAccess},
	{target: service.ErrInvalidID, status: http.StatusBadRequest, kind: kindInvalidID, msg: app.MsgInvalidID},
	{target: service.ErrInvalidTarget, status: http.StatusNotFound, kind: kindInvalidTarget, msg: app.MsgInvalidTarget},
	{target: service.ErrNotFound, status: http.StatusNotFound, kind: kindNotFound, msg: app.MsgNotFound},
	{target: ErrRouteNotFound, status: http.StatusNotFound, kind: kindNotFound, msg: app.MsgRouteNotFound},
	{target: service.ErrUsernameInUse, status: http.StatusConflict, kind: kindConflict, msg: app.MsgUsernameInUse},
	{target: service.ErrEmailInUse, status: http.StatusConflict, kind: kindConflict, msg: app.MsgEmailInUse},
	{target: service.ErrEmailAlreadyConfirmed, status: http.StatusConflict, kind: kindConflict, msg: app.MsgEmailAlreadyConfirmed},
	{target: service.ErrValidationFailed, status: http.StatusBadRequest, kind: kindValidation},
	{target: ErrInvalidJSON, status: http.StatusBadRequest, kind: kindValidation, msg: app.MsgInvalidDataProvided},
	{target: ErrInvalidGzip, status: http.StatusBadRequest, kind: kindValidation, msg: app.MsgInvalidDataProvided},
	{target: ErrTooManyRequests, status: http.StatusTooManyRequests, kind: kindRateLimited, msg: app.MsgTooManyRequests},
}

var internalErrorRule = errorRule{status: http.StatusInternalServerError, kind: kindInternal, msg: app.MsgInternalServerError}

func ruleFromError(err error) errorRule {
	for _, rule := range errorRules {
		if errors.Is(err, rule.target) {
			return rule
		}
	}
	return internalErrorRule
}

func statusFromError(err error) int {
	return ruleFromError(err).status
}

// writeError renders err as an error response. Internal failures are logged
// with their cause and reported with a generic message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	rule := ruleFromError(err)

	msg := rule.msg
	if msg == "" {
		msg = err.Error()
	}

	if rule.status >= http.StatusInternalServerError {
		log.Err(err).Str("path", r.URL.Path).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", rule.status).Msg("request rejected")
	}

	utils.WriteJSON(w, models.ErrorResponse{Errors: []models.ErrorDetail{{Msg: msg, Kind: rule.kind}}}, rule.status)
}
