package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	ghhtml "github.com/yuin/goldmark/renderer/html"

	"banana-studio/internal/contextutil"
	"banana-studio/internal/service"
	"banana-studio/internal/storage"
)

// NotesHandler serves the note history API and markdown previews.
type NotesHandler struct {
	notes    service.NoteService
	parser   goldmark.Markdown
	template *template.Template
}

// notePageData holds template data for rendered note previews.
type notePageData struct {
	Title    string
	Topic    string
	NoteType string
	Tags     []string
	ImageURL string
	Content  template.HTML
}

// NewNotesHandler creates a new NotesHandler.
func NewNotesHandler(notes service.NoteService) *NotesHandler {
	tmpl := template.Must(template.New("note").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}}</title>
  <style>
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
      margin: 0 auto;
      padding: 2rem;
      max-width: 680px;
      line-height: 1.7;
      background: #fff7f2;
      color: #3a2c26;
    }
    header {
      margin-bottom: 1.5rem;
      border-bottom: 1px solid rgba(217, 119, 87, 0.25);
      padding-bottom: 1rem;
    }
    h1 {
      margin-top: 0;
      font-size: 1.6rem;
    }
    .meta {
      color: #a1887c;
      font-size: 0.9rem;
    }
    .tags span {
      display: inline-block;
      background: rgba(217, 119, 87, 0.12);
      color: #d97757;
      border-radius: 999px;
      padding: 2px 10px;
      margin-right: 6px;
      font-size: 0.85rem;
    }
    article img {
      max-width: 100%;
      border-radius: 12px;
    }
  </style>
</head>
<body>
  <header>
    <h1>{{.Title}}</h1>
    <p class="meta">{{.NoteType}} &middot; {{.Topic}}</p>
    <p class="tags">{{range .Tags}}<span>#{{.}}</span>{{end}}</p>
  </header>
  {{if .ImageURL}}<img src="{{.ImageURL}}" alt="cover">{{end}}
  <article>{{.Content}}</article>
</body>
</html>`))

	return &NotesHandler{
		notes: notes,
		parser: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Linkify,
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
			goldmark.WithRendererOptions(
				ghhtml.WithHardWraps(),
			),
		),
		template: tmpl,
	}
}

// NoteListResponse is the payload for note listings.
type NoteListResponse struct {
	Notes []*storage.NoteRecord `json:"notes"`
}

// List returns the most recent notes. Reads degrade to an empty list.
func (h *NotesHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	notes, err := h.notes.List(ctx, parseLimit(r.URL.Query().Get("limit")))
	if err != nil {
		logger.WarnContext(ctx, "note history read failed, returning empty list", "error", err)
		writeJSON(w, r, http.StatusOK, NoteListResponse{Notes: []*storage.NoteRecord{}})
		return
	}
	if notes == nil {
		notes = []*storage.NoteRecord{}
	}
	writeJSON(w, r, http.StatusOK, NoteListResponse{Notes: notes})
}

// Save persists a note. Edits post the full note with its existing id.
func (h *NotesHandler) Save(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var note storage.NoteRecord
	if err := json.NewDecoder(r.Body).Decode(&note); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	saved, err := h.notes.SaveNote(ctx, &note)
	if err != nil {
		logger.ErrorContext(ctx, "failed to save note", "error", err)
		writeError(w, r, statusForError(err), "failed to save note")
		return
	}
	writeJSON(w, r, http.StatusOK, saved)
}

// Delete removes one note by id.
func (h *NotesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	id := chi.URLParam(r, "id")
	if err := h.notes.Delete(ctx, id); err != nil {
		logger.ErrorContext(ctx, "failed to delete note", "id", id, "error", err)
		writeError(w, r, statusForError(err), "failed to delete note")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Clear removes the whole note history.
func (h *NotesHandler) Clear(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if err := h.notes.Clear(ctx); err != nil {
		logger.ErrorContext(ctx, "failed to clear notes", "error", err)
		writeError(w, r, statusForError(err), "failed to clear notes")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Preview renders a note's markdown content as an HTML page.
func (h *NotesHandler) Preview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	id := chi.URLParam(r, "id")
	note, err := h.notes.Get(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		http.Error(w, "note not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.ErrorContext(ctx, "failed to load note for preview", "id", id, "error", err)
		http.Error(w, "failed to load note", http.StatusInternalServerError)
		return
	}

	htmlContent, err := h.renderMarkdown([]byte(note.Content))
	if err != nil {
		logger.ErrorContext(ctx, "failed to render note markdown", "id", id, "error", err)
		http.Error(w, "failed to render note", http.StatusInternalServerError)
		return
	}

	pageData := notePageData{
		Title:    note.Title,
		Topic:    note.InputTopic,
		NoteType: string(note.NoteType),
		Tags:     note.Tags,
		ImageURL: note.ImageURL,
		Content:  template.HTML(htmlContent),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.template.Execute(w, pageData); err != nil {
		logger.ErrorContext(ctx, "failed to execute note template", "id", id, "error", err)
	}
}

func (h *NotesHandler) renderMarkdown(content []byte) (string, error) {
	var buf bytes.Buffer
	if err := h.parser.Convert(content, &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}
