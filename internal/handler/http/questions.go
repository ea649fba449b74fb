package http

import (
	"net/http"

	"github.com/MKhiriev/go-ask-box/internal/app"
	"github.com/MKhiriev/go-ask-box/internal/utils"
	"github.com/MKhiriev/go-ask-box/models"
	"github.com/go-chi/chi/v5"
)

// askQuestion answers with an acknowledgement only, the stored question is
// not echoed back.
func (h *Handler) askQuestion(w http.ResponseWriter, r *http.Request) {
	var req models.AskRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.QuestionService.Ask(r.Context(), principalFromRequest(r), req); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Msg: app.MsgQuestionSent}, http.StatusCreated)
}

func (h *Handler) myQuestions(w http.ResponseWriter, r *http.Request) {
	principal := principalFromRequest(r)

	questions, err := h.services.QuestionService.ListForUser(r.Context(), principal, principal.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, questions, http.StatusOK)
}

func (h *Handler) profileQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.services.QuestionService.ListByUsername(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, questions, http.StatusOK)
}

func (h *Handler) userQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.services.QuestionService.ListForUser(r.Context(), principalFromRequest(r), chi.URLParam(r, "userID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, questions, http.StatusOK)
}

func (h *Handler) getQuestion(w http.ResponseWriter, r *http.Request) {
	question, err := h.services.QuestionService.Get(r.Context(), principalFromRequest(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, question, http.StatusOK)
}

func (h *Handler) updateQuestion(w http.ResponseWriter, r *http.Request) {
	var update models.QuestionUpdate
	if err := decodeJSON(w, r, &update); err != nil {
		writeError(w, r, err)
		return
	}

	question, err := h.services.QuestionService.Update(r.Context(), principalFromRequest(r), chi.URLParam(r, "id"), update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, question, http.StatusOK)
}

func (h *Handler) deleteQuestion(w http.ResponseWriter, r *http.Request) {
	question, err := h.services.QuestionService.Delete(r.Context(), principalFromRequest(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, question, http.StatusOK)
}
