package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_note_store.go -package=mocks banana-studio/internal/storage NoteStore

import (
	"context"
	"encoding/json"
	"fmt"
)

// DefaultNoteCap is the default most-recent-N view of the note history.
const DefaultNoteCap = 20

// NoteStore defines persistence for generated notes.
type NoteStore interface {
	// Save inserts or overwrites a note by ID. Edited notes are rewritten
	// wholesale under the same ID.
	Save(ctx context.Context, note *NoteRecord) error
	// Get returns one note by ID, including notes the display cap hides.
	// A missing ID is ErrNotFound.
	Get(ctx context.Context, id string) (*NoteRecord, error)
	// List returns up to limit notes, newest first, clamped to the cap.
	List(ctx context.Context, limit int) ([]*NoteRecord, error)
	// Delete removes one note; missing IDs are a no-op.
	Delete(ctx context.Context, id string) error
	// Clear removes all notes.
	Clear(ctx context.Context) error
}

// NoteRepo stores note history in the record store.
// It implements the NoteStore interface.
type NoteRepo struct {
	store      *Store
	displayCap int
}

// NewNoteRepo creates a NoteRepo. A displayCap <= 0 selects the default.
func NewNoteRepo(store *Store, displayCap int) *NoteRepo {
	if displayCap <= 0 {
		displayCap = DefaultNoteCap
	}
	return &NoteRepo{store: store, displayCap: displayCap}
}

// Save persists a note by its ID.
func (r *NoteRepo) Save(ctx context.Context, note *NoteRecord) error {
	if note.ID == "" {
		return fmt.Errorf("%w: note has no id", ErrWriteFailed)
	}
	payload, err := json.Marshal(note)
	if err != nil {
		return fmt.Errorf("%w: encode note: %v", ErrWriteFailed, err)
	}
	return r.store.Put(ctx, Notes, Record{
		Key:       note.ID,
		Timestamp: note.Timestamp,
		Payload:   payload,
	})
}

// Get returns one note by ID. The display cap does not apply to keyed
// reads: a physically retained note is found even when List no longer
// shows it.
func (r *NoteRepo) Get(ctx context.Context, id string) (*NoteRecord, error) {
	row, err := r.store.GetByKey(ctx, Notes, id)
	if err != nil {
		return nil, err
	}
	var note NoteRecord
	if err := json.Unmarshal(row.Payload, &note); err != nil {
		return nil, fmt.Errorf("%w: decode note %s: %v", ErrReadFailed, id, err)
	}
	return &note, nil
}

// List returns the most recent notes, capped at the display cap.
func (r *NoteRepo) List(ctx context.Context, limit int) ([]*NoteRecord, error) {
	if limit <= 0 || limit > r.displayCap {
		limit = r.displayCap
	}
	rows, err := r.store.ListByRecency(ctx, Notes, limit)
	if err != nil {
		return nil, err
	}
	notes := make([]*NoteRecord, 0, len(rows))
	for _, row := range rows {
		var note NoteRecord
		if err := json.Unmarshal(row.Payload, &note); err != nil {
			return nil, fmt.Errorf("%w: decode note %s: %v", ErrReadFailed, row.Key, err)
		}
		notes = append(notes, &note)
	}
	return notes, nil
}

// Delete removes one note by ID. Unknown IDs resolve without error.
func (r *NoteRepo) Delete(ctx context.Context, id string) error {
	return r.store.DeleteByKey(ctx, Notes, id)
}

// Clear removes the entire note history.
func (r *NoteRepo) Clear(ctx context.Context) error {
	return r.store.Clear(ctx, Notes)
}
