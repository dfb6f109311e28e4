package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/athletemind/backend/internal/apperror"
	"github.com/athletemind/backend/internal/service"
)

type ContactHandler struct {
	service *service.ContactService
	logger  *slog.Logger
}

func NewContactHandler(service *service.ContactService, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{service: service, logger: logger}
}

// HandleList returns all submitted inquiries (admin view).
//
// HTTP: GET /api/contacts
func (h *ContactHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contacts)
}

// HandleCreate accepts an inquiry form submission.
//
// HTTP: POST /api/contacts
func (h *ContactHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in service.ContactSubmission
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.logger.Warn("invalid contact JSON", slog.String("error", err.Error()))
		writeError(w, apperror.ValidationFailed("payload", "invalid JSON body"))
		return
	}

	contact, err := h.service.Submit(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, contact)
}
