package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_note_service.go -package=mocks -mock_names=NoteService=MockNoteService banana-studio/internal/service NoteService

import (
	"context"
	"log/slog"
	"time"

	"banana-studio/internal/storage"
)

// NoteService manages generated note history.
type NoteService interface {
	// SaveNote persists a note. New notes get an id and timestamp; an
	// edited note keeps its id and is replaced wholesale.
	SaveNote(ctx context.Context, note *storage.NoteRecord) (*storage.NoteRecord, error)
	// Get returns one note by ID, even when the display cap hides it from
	// List. A missing ID is storage.ErrNotFound.
	Get(ctx context.Context, id string) (*storage.NoteRecord, error)
	// List returns the most recent notes, capped at the display cap.
	List(ctx context.Context, limit int) ([]*storage.NoteRecord, error)
	// Delete removes one note by ID.
	Delete(ctx context.Context, id string) error
	// Clear removes the whole note history.
	Clear(ctx context.Context) error
}

// noteService implements NoteService.
type noteService struct {
	notes  storage.NoteStore
	logger *slog.Logger
}

// NewNoteService creates a NoteService.
func NewNoteService(notes storage.NoteStore) NoteService {
	return &noteService{
		notes:  notes,
		logger: slog.Default(),
	}
}

// SaveNote persists a note, assigning identity on first save.
func (s *noteService) SaveNote(ctx context.Context, note *storage.NoteRecord) (*storage.NoteRecord, error) {
	if note == nil || (note.Title == "" && note.Content == "") {
		return nil, &ValidationError{Field: "note", Message: "title and content cannot both be empty"}
	}

	if note.ID == "" {
		note.ID = NewRecordID("note")
	}
	if note.Timestamp == 0 {
		note.Timestamp = time.Now().UnixMilli()
	}
	if note.NoteType == "" {
		note.NoteType = storage.NoteCustom
	}
	if note.Tags == nil {
		note.Tags = []string{}
	}

	if err := s.notes.Save(ctx, note); err != nil {
		s.logger.ErrorContext(ctx, "failed to save note", "id", note.ID, "error", err)
		return nil, WrapError(err, "save note")
	}
	return note, nil
}

func (s *noteService) Get(ctx context.Context, id string) (*storage.NoteRecord, error) {
	if id == "" {
		return nil, &ValidationError{Field: "id", Message: "cannot be empty"}
	}
	return s.notes.Get(ctx, id)
}

func (s *noteService) List(ctx context.Context, limit int) ([]*storage.NoteRecord, error) {
	return s.notes.List(ctx, limit)
}

func (s *noteService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return &ValidationError{Field: "id", Message: "cannot be empty"}
	}
	return s.notes.Delete(ctx, id)
}

func (s *noteService) Clear(ctx context.Context) error {
	return s.notes.Clear(ctx)
}
