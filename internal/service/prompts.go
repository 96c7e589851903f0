package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_prompt_service.go -package=mocks -mock_names=PromptService=MockPromptService banana-studio/internal/service PromptService

import (
	"context"
	"log/slog"
	"strings"

	"banana-studio/internal/storage"
)

// PromptService owns the prompt-history policy the repository deliberately
// does not: adding a prompt removes any equal entry, prepends, and truncates
// to the maximum before the whole list is replaced atomically.
type PromptService interface {
	// Add records a prompt as most recently used and returns the new list.
	Add(ctx context.Context, prompt string) ([]string, error)
	// Remove deletes one prompt by value and returns the new list.
	Remove(ctx context.Context, prompt string) ([]string, error)
	// Clear empties the history.
	Clear(ctx context.Context) error
	// List returns up to limit prompts, most recent first.
	List(ctx context.Context, limit int) ([]string, error)
}

// promptService implements PromptService.
type promptService struct {
	prompts storage.PromptStore
	max     int
	logger  *slog.Logger
}

// NewPromptService creates a PromptService. A max <= 0 selects the default
// cap of 10.
func NewPromptService(prompts storage.PromptStore, max int) PromptService {
	if max <= 0 {
		max = storage.DefaultPromptCap
	}
	return &promptService{
		prompts: prompts,
		max:     max,
		logger:  slog.Default(),
	}
}

// Add dedups, promotes to the front, caps, and replaces the stored list.
func (s *promptService) Add(ctx context.Context, prompt string) ([]string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, &ValidationError{Field: "prompt", Message: "cannot be empty"}
	}

	current, err := s.prompts.List(ctx, s.max)
	if err != nil {
		return nil, WrapError(err, "load prompt history")
	}

	updated := make([]string, 0, s.max)
	updated = append(updated, prompt)
	for _, p := range current {
		if p == prompt {
			continue
		}
		updated = append(updated, p)
		if len(updated) == s.max {
			break
		}
	}

	if err := s.prompts.Replace(ctx, updated); err != nil {
		return nil, WrapError(err, "save prompt history")
	}
	return updated, nil
}

// Remove drops one prompt by value; absent values are a no-op.
func (s *promptService) Remove(ctx context.Context, prompt string) ([]string, error) {
	current, err := s.prompts.List(ctx, s.max)
	if err != nil {
		return nil, WrapError(err, "load prompt history")
	}

	updated := make([]string, 0, len(current))
	for _, p := range current {
		if p != prompt {
			updated = append(updated, p)
		}
	}
	if len(updated) == len(current) {
		return current, nil
	}

	if err := s.prompts.Replace(ctx, updated); err != nil {
		return nil, WrapError(err, "save prompt history")
	}
	return updated, nil
}

// Clear replaces the list with an empty one.
func (s *promptService) Clear(ctx context.Context) error {
	if err := s.prompts.Replace(ctx, nil); err != nil {
		return WrapError(err, "clear prompt history")
	}
	return nil
}

func (s *promptService) List(ctx context.Context, limit int) ([]string, error) {
	return s.prompts.List(ctx, limit)
}
