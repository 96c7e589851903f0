package handlers

import (
	"encoding/json"
	"net/http"

	"banana-studio/internal/contextutil"
	"banana-studio/internal/service"
)

// PromptsHandler serves the prompt history API.
type PromptsHandler struct {
	prompts service.PromptService
}

// NewPromptsHandler creates a new PromptsHandler.
func NewPromptsHandler(prompts service.PromptService) *PromptsHandler {
	return &PromptsHandler{prompts: prompts}
}

// PromptRequest carries a single prompt value.
type PromptRequest struct {
	Prompt string `json:"prompt"`
}

// PromptListResponse is the payload for prompt listings.
type PromptListResponse struct {
	Prompts []string `json:"prompts"`
}

// List returns the most recent prompts. Reads degrade to an empty list.
func (h *PromptsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	prompts, err := h.prompts.List(ctx, parseLimit(r.URL.Query().Get("limit")))
	if err != nil {
		logger.WarnContext(ctx, "prompt history read failed, returning empty list", "error", err)
		writeJSON(w, r, http.StatusOK, PromptListResponse{Prompts: []string{}})
		return
	}
	if prompts == nil {
		prompts = []string{}
	}
	writeJSON(w, r, http.StatusOK, PromptListResponse{Prompts: prompts})
}

// Add records a prompt as most recently used.
func (h *PromptsHandler) Add(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req PromptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	prompts, err := h.prompts.Add(ctx, req.Prompt)
	if err != nil {
		logger.ErrorContext(ctx, "failed to add prompt", "error", err)
		writeError(w, r, statusForError(err), "failed to add prompt")
		return
	}
	writeJSON(w, r, http.StatusOK, PromptListResponse{Prompts: prompts})
}

// Remove deletes one prompt by value.
func (h *PromptsHandler) Remove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req PromptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	prompts, err := h.prompts.Remove(ctx, req.Prompt)
	if err != nil {
		logger.ErrorContext(ctx, "failed to remove prompt", "error", err)
		writeError(w, r, statusForError(err), "failed to remove prompt")
		return
	}
	writeJSON(w, r, http.StatusOK, PromptListResponse{Prompts: prompts})
}

// Clear empties the prompt history.
func (h *PromptsHandler) Clear(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if err := h.prompts.Clear(ctx); err != nil {
		logger.ErrorContext(ctx, "failed to clear prompt history", "error", err)
		writeError(w, r, statusForError(err), "failed to clear prompt history")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
