package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"banana-studio/internal/contextutil"
	"banana-studio/internal/service"
	"banana-studio/internal/storage"
)

// GenerateHandler serves the AI generation endpoints.
type GenerateHandler struct {
	generate service.GenerateService
}

// NewGenerateHandler creates a new GenerateHandler.
func NewGenerateHandler(generate service.GenerateService) *GenerateHandler {
	return &GenerateHandler{generate: generate}
}

// EditRequest is the payload for an image edit. Images holds source data
// URLs; an empty list requests pure text-to-image.
type EditRequest struct {
	Prompt string   `json:"prompt"`
	Images []string `json:"images"`
}

// EditResponse carries the generated image. Saved is false when the result
// could not be written to history; the image is still returned.
type EditResponse struct {
	EditedImage string `json:"editedImage"`
	RecordID    string `json:"recordId,omitempty"`
	Saved       bool   `json:"saved"`
}

// EditImage handles POST /api/edit.
func (h *GenerateHandler) EditImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req EditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.generate.EditImage(ctx, service.EditRequest{
		Prompt: req.Prompt,
		Images: req.Images,
	})
	if err != nil {
		logger.ErrorContext(ctx, "edit request failed", "error", err)
		writeError(w, r, statusForError(err), "image generation failed")
		return
	}

	resp := EditResponse{
		EditedImage: result.EditedImage,
		Saved:       result.Saved,
	}
	if result.Record != nil {
		resp.RecordID = result.Record.ID
	}
	writeJSON(w, r, http.StatusOK, resp)
}

// GenerateNoteRequest is the payload for note generation.
type GenerateNoteRequest struct {
	Topic    string `json:"topic"`
	NoteType string `json:"noteType"`
	ImageURL string `json:"imageUrl"`
}

// GenerateNoteResponse carries the generated note.
type GenerateNoteResponse struct {
	Note  *storage.NoteRecord `json:"note"`
	Saved bool                `json:"saved"`
}

// GenerateNote handles POST /api/notes/generate.
func (h *GenerateHandler) GenerateNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req GenerateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.generate.GenerateNote(ctx, service.NoteRequest{
		Topic:    req.Topic,
		NoteType: storage.NoteType(req.NoteType),
		ImageURL: req.ImageURL,
	})
	if err != nil {
		logger.ErrorContext(ctx, "note generation failed", "error", err)
		writeError(w, r, statusForError(err), "note generation failed")
		return
	}

	writeJSON(w, r, http.StatusOK, GenerateNoteResponse{
		Note:  result.Note,
		Saved: result.Saved,
	})
}

// RewriteNoteRequest is the payload for an AI note revision.
type RewriteNoteRequest struct {
	Instruction string `json:"instruction"`
}

// RewriteNote handles POST /api/notes/{id}/rewrite.
func (h *GenerateHandler) RewriteNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req RewriteNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.generate.RewriteNote(ctx, service.RewriteRequest{
		NoteID:      chi.URLParam(r, "id"),
		Instruction: req.Instruction,
	})
	if err != nil {
		logger.ErrorContext(ctx, "note rewrite failed", "error", err)
		writeError(w, r, statusForError(err), "note rewrite failed")
		return
	}

	writeJSON(w, r, http.StatusOK, GenerateNoteResponse{
		Note:  result.Note,
		Saved: result.Saved,
	})
}

// ChangeStyleRequest is the payload for a note style change.
type ChangeStyleRequest struct {
	Style string `json:"style"`
}

// ChangeNoteStyle handles POST /api/notes/{id}/style.
func (h *GenerateHandler) ChangeNoteStyle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req ChangeStyleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.generate.ChangeNoteStyle(ctx, service.StyleRequest{
		NoteID: chi.URLParam(r, "id"),
		Style:  req.Style,
	})
	if err != nil {
		logger.ErrorContext(ctx, "note style change failed", "error", err)
		writeError(w, r, statusForError(err), "note style change failed")
		return
	}

	writeJSON(w, r, http.StatusOK, GenerateNoteResponse{
		Note:  result.Note,
		Saved: result.Saved,
	})
}

// TitlesRequest is the payload for alternative title generation.
type TitlesRequest struct {
	Topic    string `json:"topic"`
	NoteType string `json:"noteType"`
	Count    int    `json:"count"`
}

// TitlesResponse carries the generated titles.
type TitlesResponse struct {
	Titles []string `json:"titles"`
}

// GenerateTitles handles POST /api/notes/titles.
func (h *GenerateHandler) GenerateTitles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req TitlesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	titles, err := h.generate.GenerateTitles(ctx, service.TitlesRequest{
		Topic:    req.Topic,
		NoteType: storage.NoteType(req.NoteType),
		Count:    req.Count,
	})
	if err != nil {
		logger.ErrorContext(ctx, "title generation failed", "error", err)
		writeError(w, r, statusForError(err), "title generation failed")
		return
	}

	writeJSON(w, r, http.StatusOK, TitlesResponse{Titles: titles})
}

// EnhancePromptRequest is the payload for prompt enhancement.
type EnhancePromptRequest struct {
	Prompt string `json:"prompt"`
}

// EnhancePromptResponse carries the enhanced prompt.
type EnhancePromptResponse struct {
	Prompt string `json:"prompt"`
}

// EnhancePrompt handles POST /api/prompts/enhance.
func (h *GenerateHandler) EnhancePrompt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req EnhancePromptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	enhanced, err := h.generate.EnhancePrompt(ctx, req.Prompt)
	if err != nil {
		logger.ErrorContext(ctx, "prompt enhancement failed", "error", err)
		writeError(w, r, statusForError(err), "prompt enhancement failed")
		return
	}

	writeJSON(w, r, http.StatusOK, EnhancePromptResponse{Prompt: enhanced})
}
