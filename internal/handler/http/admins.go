package http

import (
	"net/http"

	"github.com/MKhiriev/go-ask-box/internal/utils"
	"github.com/MKhiriev/go-ask-box/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listAdmins(w http.ResponseWriter, r *http.Request) {
	admins, err := h.services.AdminService.List(r.Context(), principalFromRequest(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, admins, http.StatusOK)
}

func (h *Handler) createAdmin(w http.ResponseWriter, r *http.Request) {
	var req models.AdminCreateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	admin, err := h.services.AdminService.Create(r.Context(), principalFromRequest(r), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, admin, http.StatusCreated)
}

func (h *Handler) getAdmin(w http.ResponseWriter, r *http.Request) {
	admin, err := h.services.AdminService.Get(r.Context(), principalFromRequest(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, admin, http.StatusOK)
}

func (h *Handler) updateAdmin(w http.ResponseWriter, r *http.Request) {
	var update models.AdminUpdate
	if err := decodeJSON(w, r, &update); err != nil {
		writeError(w, r, err)
		return
	}

	admin, err := h.services.AdminService.Update(r.Context(), principalFromRequest(r), chi.URLParam(r, "id"), update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, admin, http.StatusOK)
}

func (h *Handler) deleteAdmin(w http.ResponseWriter, r *http.Request) {
	admin, err := h.services.AdminService.Delete(r.Context(), principalFromRequest(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, admin, http.StatusOK)
}
