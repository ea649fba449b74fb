package http

import (
	"net/http"

	"github.com/MKhiriev/go-ask-box/internal/app"
	"github.com/MKhiriev/go-ask-box/internal/logger"
	"github.com/MKhiriev/go-ask-box/internal/utils"
	"github.com/MKhiriev/go-ask-box/models"
)

func (h *Handler) adminLogin(w http.ResponseWriter, r *http.Request) {
	var credentials models.Credentials
	if err := decodeJSON(w, r, &credentials); err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AdminService.Login(r.Context(), credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeToken(w, token)
}

func (h *Handler) userLogin(w http.ResponseWriter, r *http.Request) {
	var credentials models.Credentials
	if err := decodeJSON(w, r, &credentials); err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.UserService.Login(r.Context(), credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeToken(w, token)
}

func (h *Handler) adminMe(w http.ResponseWriter, r *http.Request) {
	admin, err := h.services.AdminService.Me(r.Context(), principalFromRequest(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, admin, http.StatusOK)
}

func (h *Handler) userMe(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.UserService.Me(r.Context(), principalFromRequest(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.UserRegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.UserService.Register(r.Context(), req); err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("username", req.Username).Msg("user registered")
	utils.WriteJSON(w, models.MessageResponse{Msg: app.MsgUserRegistered}, http.StatusCreated)
}

func (h *Handler) verifyEmail(w http.ResponseWriter, r *http.Request) {
	var req models.EmailVerificationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.UserService.VerifyEmail(r.Context(), req); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Msg: app.MsgEmailConfirmed}, http.StatusOK)
}

// writeToken returns the token in the body and mirrors it in the
// X-Auth-Token header.
func writeToken(w http.ResponseWriter, token models.Token) {
	w.Header().Set(authTokenHeader, token.SignedString)
	utils.WriteJSON(w, token, http.StatusOK)
}
