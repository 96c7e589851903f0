package legacy

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"banana-studio/internal/storage"
)

// Result reports the outcome of one migration run.
type Result struct {
	Success       bool `json:"success"`
	MigratedCount int  `json:"migratedCount"`
}

// Migrator moves legacy flat-list data into the record store. It runs once
// at startup, before history is first read, and is safe to re-run: a run
// with no legacy data left is a no-op reporting zero.
type Migrator struct {
	source      Source
	generations storage.GenerationStore
	prompts     storage.PromptStore
	logger      *slog.Logger
}

// NewMigrator creates a Migrator.
func NewMigrator(source Source, generations storage.GenerationStore, prompts storage.PromptStore) *Migrator {
	return &Migrator{
		source:      source,
		generations: generations,
		prompts:     prompts,
		logger:      slog.Default(),
	}
}

// Run migrates the generation-history blob and then, independently, the
// prompt-history blob. A legacy key is erased only after every record under
// it has been written; on any failure the key is left in place so a future
// run can retry, and Success is false. Records already written stay written
// (re-running is idempotent by record ID).
func (m *Migrator) Run(ctx context.Context) Result {
	count, genErr := m.migrateGenerations(ctx)
	if genErr != nil {
		m.logger.WarnContext(ctx, "generation history migration failed, legacy data preserved", "error", genErr, "migrated", count)
	}

	promptErr := m.migratePrompts(ctx)
	if promptErr != nil {
		m.logger.WarnContext(ctx, "prompt history migration failed, legacy data preserved", "error", promptErr)
	}

	return Result{
		Success:       genErr == nil && promptErr == nil,
		MigratedCount: count,
	}
}

// migrateGenerations writes every legacy generation record through the
// repository, then erases the legacy key. Returns how many records were
// written, even on failure.
func (m *Migrator) migrateGenerations(ctx context.Context) (int, error) {
	blob, ok, err := m.source.Read(GenerationHistoryKey)
	if err != nil {
		return 0, fmt.Errorf("read legacy generation history: %w", err)
	}
	if !ok || blob == "" {
		return 0, nil
	}

	var records []*storage.GenerationRecord
	if err := json.Unmarshal([]byte(blob), &records); err != nil {
		return 0, fmt.Errorf("decode legacy generation history: %w", err)
	}
	m.logger.InfoContext(ctx, "migrating legacy generation history", "records", len(records))

	migrated := 0
	for _, rec := range records {
		if rec == nil {
			// Legacy dumps can contain null entries; there is nothing to carry over.
			m.logger.WarnContext(ctx, "skipping null entry in legacy generation history")
			continue
		}
		if err := m.generations.Save(ctx, rec); err != nil {
			return migrated, fmt.Errorf("write generation record %s: %w", rec.ID, err)
		}
		migrated++
	}

	// Every record is durably written; only now is the source erased.
	if err := m.source.Erase(GenerationHistoryKey); err != nil {
		return migrated, fmt.Errorf("erase legacy generation history: %w", err)
	}
	return migrated, nil
}

// migratePrompts replaces the prompt list from the legacy blob, then erases
// the legacy key.
func (m *Migrator) migratePrompts(ctx context.Context) error {
	blob, ok, err := m.source.Read(PromptHistoryKey)
	if err != nil {
		return fmt.Errorf("read legacy prompt history: %w", err)
	}
	if !ok || blob == "" {
		return nil
	}

	var prompts []string
	if err := json.Unmarshal([]byte(blob), &prompts); err != nil {
		return fmt.Errorf("decode legacy prompt history: %w", err)
	}
	m.logger.InfoContext(ctx, "migrating legacy prompt history", "prompts", len(prompts))

	if err := m.prompts.Replace(ctx, prompts); err != nil {
		return fmt.Errorf("write prompt history: %w", err)
	}
	if err := m.source.Erase(PromptHistoryKey); err != nil {
		return fmt.Errorf("erase legacy prompt history: %w", err)
	}
	return nil
}
