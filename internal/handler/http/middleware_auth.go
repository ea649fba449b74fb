package http

import (
	"net/http"

	"github.com/MKhiriev/go-ask-box/internal/utils"
	"github.com/MKhiriev/go-ask-box/models"
)

// authTokenHeader carries the session token. "Authorization: Bearer" is
// accepted as well.
const authTokenHeader = "X-Auth-Token"

// authenticate resolves the request principal under policy and stores it in
// the request context. Rejections are written as error responses and the
// route handler is not called.
func (h *Handler) authenticate(policy models.Policy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			credential, err := credentialFromRequest(r)
			if err != nil {
				writeError(w, r, err)
				return
			}

			principal, err := h.services.PrincipalResolver.Resolve(r.Context(), credential, policy)
			if err != nil {
				writeError(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(utils.WithPrincipal(r.Context(), principal)))
		})
	}
}

// credentialFromRequest returns the raw token, or "" when the request
// carries none.
func credentialFromRequest(r *http.Request) (string, error) {
	if token := r.Header.Get(authTokenHeader); token != "" {
		return token, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", nil
	}

	token, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return "", ErrInvalidAuthorizationHeader
	}

	return token, nil
}

// principalFromRequest returns the principal stored by authenticate. Routes
// without authentication get a guest.
func principalFromRequest(r *http.Request) models.Principal {
	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		return models.Guest()
	}
	return principal
}
