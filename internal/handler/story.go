// Package handler contains the HTTP layer: decoding requests, calling
// services, and writing responses. Nothing here touches a repository
// directly, and nothing below this layer knows about HTTP.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/athletemind/backend/internal/apperror"
	"github.com/athletemind/backend/internal/service"
)

// StoryHandler serves the story endpoints, public and moderation alike.
//
// The moderation routes (pending list, approve, delete) are unprotected —
// the platform currently runs behind a trusted frontend with no login.
type StoryHandler struct {
	service *service.StoryService
	logger  *slog.Logger
}

func NewStoryHandler(service *service.StoryService, logger *slog.Logger) *StoryHandler {
	return &StoryHandler{service: service, logger: logger}
}

// HandleListApproved returns published stories.
//
// HTTP: GET /api/stories
func (h *StoryHandler) HandleListApproved(w http.ResponseWriter, r *http.Request) {
	stories, err := h.service.ListApproved(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stories)
}

// HandleListPending returns stories awaiting moderation.
//
// HTTP: GET /api/stories/pending
func (h *StoryHandler) HandleListPending(w http.ResponseWriter, r *http.Request) {
	stories, err := h.service.ListPending(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stories)
}

// HandleCreate accepts a story submission.
//
// HTTP: POST /api/stories
//
// Decoding into service.StorySubmission drops unknown JSON fields and
// ignores server-assigned ones — a client cannot smuggle in "approved" or
// "submittedAt".
func (h *StoryHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in service.StorySubmission
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.logger.Warn("invalid story JSON", slog.String("error", err.Error()))
		writeError(w, apperror.ValidationFailed("payload", "invalid JSON body"))
		return
	}

	story, err := h.service.Submit(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, story)
}

// HandleApprove publishes a pending story.
//
// HTTP: POST /api/stories/{id}/approve
func (h *StoryHandler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	story, err := h.service.Approve(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, story)
}

// HandleDelete rejects (deletes) a story.
//
// HTTP: DELETE /api/stories/{id}
//
// Returns 200 with a confirmation message rather than 204 — the frontend
// reads the body.
func (h *StoryHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.service.Reject(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Story deleted successfully"})
}
