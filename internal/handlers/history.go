package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"banana-studio/internal/contextutil"
	"banana-studio/internal/service"
	"banana-studio/internal/storage"
)

// HistoryHandler serves the generation history API.
type HistoryHandler struct {
	history service.HistoryService
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(history service.HistoryService) *HistoryHandler {
	return &HistoryHandler{history: history}
}

// HistoryListResponse is the payload for history listings.
type HistoryListResponse struct {
	Records []*storage.GenerationRecord `json:"records"`
}

// List returns the most recent generation records. History is a convenience
// feature: a failed read degrades to an empty list rather than an error.
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	limit := parseLimit(r.URL.Query().Get("limit"))
	records, err := h.history.List(ctx, limit)
	if err != nil {
		logger.WarnContext(ctx, "history read failed, returning empty list", "error", err)
		writeJSON(w, r, http.StatusOK, HistoryListResponse{Records: []*storage.GenerationRecord{}})
		return
	}
	if records == nil {
		records = []*storage.GenerationRecord{}
	}
	writeJSON(w, r, http.StatusOK, HistoryListResponse{Records: records})
}

// Delete removes one record by id. User-initiated, so failures surface.
func (h *HistoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	id := chi.URLParam(r, "id")
	if err := h.history.Delete(ctx, id); err != nil {
		logger.ErrorContext(ctx, "failed to delete history record", "id", id, "error", err)
		writeError(w, r, statusForError(err), "failed to delete record")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Clear removes the whole generation history.
func (h *HistoryHandler) Clear(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if err := h.history.Clear(ctx); err != nil {
		logger.ErrorContext(ctx, "failed to clear history", "error", err)
		writeError(w, r, statusForError(err), "failed to clear history")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// parseLimit reads a limit query parameter; the repository clamps it to the
// display cap, so 0 (meaning "default") is fine here.
func parseLimit(raw string) int {
	if raw == "" {
		return 0
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}
