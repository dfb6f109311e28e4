package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/athletemind/backend/internal/apperror"
	"github.com/athletemind/backend/internal/service"
)

type ResourceHandler struct {
	service *service.ResourceService
	logger  *slog.Logger
}

func NewResourceHandler(service *service.ResourceService, logger *slog.Logger) *ResourceHandler {
	return &ResourceHandler{service: service, logger: logger}
}

// HandleList returns curated resources, optionally filtered by category.
//
// HTTP: GET /api/resources?category=crisis
func (h *ResourceHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	resources, err := h.service.List(r.Context(), category)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resources)
}

// likeRequest is the body of a like update. Likes is a pointer so a
// missing field is distinguishable from an explicit zero.
type likeRequest struct {
	Likes *int `json:"likes"`
}

// HandleLike sets a resource's like count to the value the client sends.
//
// HTTP: POST /api/resources/{id}/like
// BODY: {"likes": 25}
func (h *ResourceHandler) HandleLike(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var body likeRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.logger.Warn("invalid like JSON", slog.String("error", err.Error()))
		writeError(w, apperror.ValidationFailed("payload", "invalid JSON body"))
		return
	}
	if body.Likes == nil {
		writeError(w, apperror.ValidationFailed("likes", "likes must be a number"))
		return
	}

	resource, err := h.service.Like(r.Context(), id, *body.Likes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resource)
}
