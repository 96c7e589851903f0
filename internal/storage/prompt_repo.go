package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_prompt_store.go -package=mocks banana-studio/internal/storage PromptStore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// DefaultPromptCap is the maximum number of prompts the history keeps.
const DefaultPromptCap = 10

// PromptStore defines persistence for the recent-prompt list. It is a dumb
// replace-the-whole-list primitive: deduplication, ordering and the cap are
// the caller's policy (see service.PromptService).
type PromptStore interface {
	// Replace atomically swaps the persisted list for the given one,
	// most-recent-first. Readers never observe a partially written list.
	Replace(ctx context.Context, prompts []string) error
	// List returns up to limit prompts, most recent first.
	List(ctx context.Context, limit int) ([]string, error)
}

// promptRow is the stored payload for a single prompt entry.
type promptRow struct {
	Prompt string `json:"prompt"`
}

// PromptRepo stores the prompt list in the record store.
// It implements the PromptStore interface.
type PromptRepo struct {
	store *Store
	cap   int
}

// NewPromptRepo creates a PromptRepo. A cap <= 0 selects the default.
func NewPromptRepo(store *Store, cap int) *PromptRepo {
	if cap <= 0 {
		cap = DefaultPromptCap
	}
	return &PromptRepo{store: store, cap: cap}
}

// Replace swaps the whole list in one transaction. All rows share one
// timestamp; the auto-increment key preserves the given order, so List
// returns prompts in exactly the order they were saved.
func (r *PromptRepo) Replace(ctx context.Context, prompts []string) error {
	now := time.Now().UnixMilli()
	recs := make([]Record, 0, len(prompts))
	for _, prompt := range prompts {
		payload, err := json.Marshal(promptRow{Prompt: prompt})
		if err != nil {
			return fmt.Errorf("%w: encode prompt: %v", ErrWriteFailed, err)
		}
		recs = append(recs, Record{Timestamp: now, Payload: payload})
	}
	return r.store.ReplaceAll(ctx, PromptHistory, recs)
}

// List returns the most recent prompts, capped at the configured maximum.
func (r *PromptRepo) List(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 || limit > r.cap {
		limit = r.cap
	}
	rows, err := r.store.ListByRecency(ctx, PromptHistory, limit)
	if err != nil {
		return nil, err
	}
	prompts := make([]string, 0, len(rows))
	for _, row := range rows {
		var entry promptRow
		if err := json.Unmarshal(row.Payload, &entry); err != nil {
			return nil, fmt.Errorf("%w: decode prompt: %v", ErrReadFailed, err)
		}
		prompts = append(prompts, entry.Prompt)
	}
	return prompts, nil
}
