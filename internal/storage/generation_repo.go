package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_generation_store.go -package=mocks banana-studio/internal/storage GenerationStore

import (
	"context"
	"encoding/json"
	"fmt"
)

// DefaultGenerationCap is the default most-recent-N view of the generation
// history. The store may physically retain more rows than the cap; it is
// enforced at the read boundary only.
const DefaultGenerationCap = 20

// GenerationStore defines persistence for AI image-edit results.
type GenerationStore interface {
	// Save inserts or overwrites a record by ID.
	Save(ctx context.Context, rec *GenerationRecord) error
	// List returns up to limit records, newest first. A limit <= 0 or
	// above the display cap is clamped to the cap.
	List(ctx context.Context, limit int) ([]*GenerationRecord, error)
	// Delete removes one record; missing IDs are a no-op.
	Delete(ctx context.Context, id string) error
	// Clear removes all records.
	Clear(ctx context.Context) error
}

// GenerationRepo stores generation history in the record store.
// It implements the GenerationStore interface.
type GenerationRepo struct {
	store      *Store
	displayCap int
}

// NewGenerationRepo creates a GenerationRepo. A displayCap <= 0 selects the
// default.
func NewGenerationRepo(store *Store, displayCap int) *GenerationRepo {
	if displayCap <= 0 {
		displayCap = DefaultGenerationCap
	}
	return &GenerationRepo{store: store, displayCap: displayCap}
}

// Save persists a record by its ID. The latest Save for an ID wins.
func (r *GenerationRepo) Save(ctx context.Context, rec *GenerationRecord) error {
	if rec.ID == "" {
		return fmt.Errorf("%w: generation record has no id", ErrWriteFailed)
	}
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("%w: encode generation record: %v", ErrWriteFailed, err)
	}
	return r.store.Put(ctx, GenerationHistory, Record{
		Key:       rec.ID,
		Timestamp: rec.Timestamp,
		Payload:   payload,
	})
}

// List returns the most recent records, capped at the display cap.
func (r *GenerationRepo) List(ctx context.Context, limit int) ([]*GenerationRecord, error) {
	if limit <= 0 || limit > r.displayCap {
		limit = r.displayCap
	}
	rows, err := r.store.ListByRecency(ctx, GenerationHistory, limit)
	if err != nil {
		return nil, err
	}
	recs := make([]*GenerationRecord, 0, len(rows))
	for _, row := range rows {
		var rec GenerationRecord
		if err := json.Unmarshal(row.Payload, &rec); err != nil {
			return nil, fmt.Errorf("%w: decode generation record %s: %v", ErrReadFailed, row.Key, err)
		}
		recs = append(recs, &rec)
	}
	return recs, nil
}

// Delete removes one record by ID. Unknown IDs resolve without error.
func (r *GenerationRepo) Delete(ctx context.Context, id string) error {
	return r.store.DeleteByKey(ctx, GenerationHistory, id)
}

// Clear removes the entire generation history.
func (r *GenerationRepo) Clear(ctx context.Context) error {
	return r.store.Clear(ctx, GenerationHistory)
}
