package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_ai_client.go -package=mocks banana-studio/internal/service AIClient
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_generate_service.go -package=mocks -mock_names=GenerateService=MockGenerateService banana-studio/internal/service GenerateService

import (
	"context"
	"log/slog"
	"time"

	"banana-studio/internal/llm"
	"banana-studio/internal/storage"
)

// AIClient is the generative backend. This interface is defined from the
// service layer's perspective (consumer-first); llm.GeminiClient implements
// it.
type AIClient interface {
	// EditImage returns an edited/generated image (data URL) for the
	// prompt and zero or more source images.
	EditImage(ctx context.Context, prompt string, images []string) (string, error)
	// GenerateNote returns structured note copy for a topic.
	GenerateNote(ctx context.Context, topic, noteType, imageDataURL string) (*llm.GeneratedNote, error)
	// RewriteNote revises note copy according to an instruction.
	RewriteNote(ctx context.Context, note *llm.GeneratedNote, instruction string) (*llm.GeneratedNote, error)
	// ChangeNoteStyle rewrites note copy in another delivery style.
	ChangeNoteStyle(ctx context.Context, note *llm.GeneratedNote, style string) (*llm.GeneratedNote, error)
	// GenerateTitles returns alternative titles for a topic.
	GenerateTitles(ctx context.Context, topic, noteType string, count int) ([]string, error)
	// EnhancePrompt expands a user prompt for image generation.
	EnhancePrompt(ctx context.Context, prompt string) (string, error)
}

// EditRequest asks for an image edit (or pure text-to-image when Images is
// empty).
type EditRequest struct {
	Prompt string
	Images []string
}

// EditResult is the outcome of an edit. Saved reports whether the history
// write succeeded; persistence is best-effort relative to generation, so a
// failed save still returns the image.
type EditResult struct {
	EditedImage string
	Record      *storage.GenerationRecord
	Saved       bool
}

// NoteRequest asks for a generated note.
type NoteRequest struct {
	Topic    string
	NoteType storage.NoteType
	ImageURL string
}

// NoteResult is the outcome of note generation.
type NoteResult struct {
	Note  *storage.NoteRecord
	Saved bool
}

// RewriteRequest asks for an AI revision of a stored note.
type RewriteRequest struct {
	NoteID      string
	Instruction string
}

// StyleRequest asks for a stored note to be rewritten in another style.
type StyleRequest struct {
	NoteID string
	Style  string
}

// noteStyles lists the supported delivery styles for StyleRequest.
var noteStyles = map[string]bool{
	"lively":       true,
	"professional": true,
	"literary":     true,
	"humorous":     true,
}

// TitlesRequest asks for alternative titles for a topic.
type TitlesRequest struct {
	Topic    string
	NoteType storage.NoteType
	Count    int
}

// DefaultTitleCount is how many alternative titles a TitlesRequest gets
// when it does not ask for a specific number.
const DefaultTitleCount = 3

// GenerateService runs the AI generation flows and records their results.
type GenerateService interface {
	EditImage(ctx context.Context, req EditRequest) (EditResult, error)
	GenerateNote(ctx context.Context, req NoteRequest) (NoteResult, error)
	// RewriteNote loads a note, revises it per the instruction, and saves
	// it back under the same ID.
	RewriteNote(ctx context.Context, req RewriteRequest) (NoteResult, error)
	// ChangeNoteStyle loads a note and rewrites its title and content in
	// another style, keeping the tags.
	ChangeNoteStyle(ctx context.Context, req StyleRequest) (NoteResult, error)
	// GenerateTitles returns alternative titles for a topic.
	GenerateTitles(ctx context.Context, req TitlesRequest) ([]string, error)
	// EnhancePrompt expands a user prompt for image generation. A model
	// failure falls back to the original prompt rather than erroring.
	EnhancePrompt(ctx context.Context, prompt string) (string, error)
}

// generateService implements GenerateService.
type generateService struct {
	ai      AIClient
	history HistoryService
	prompts PromptService
	notes   NoteService
	logger  *slog.Logger
}

// NewGenerateService creates a GenerateService.
func NewGenerateService(ai AIClient, history HistoryService, prompts PromptService, notes NoteService) GenerateService {
	return &generateService{
		ai:      ai,
		history: history,
		prompts: prompts,
		notes:   notes,
		logger:  slog.Default(),
	}
}

// EditImage calls the model, then records the result and the prompt.
// History and prompt persistence never fail the generation that produced
// them: failures are logged and reported through Saved.
func (s *generateService) EditImage(ctx context.Context, req EditRequest) (EditResult, error) {
	if req.Prompt == "" {
		return EditResult{}, &ValidationError{Field: "prompt", Message: "cannot be empty"}
	}

	edited, err := s.ai.EditImage(ctx, req.Prompt, req.Images)
	if err != nil {
		s.logger.ErrorContext(ctx, "image generation failed", "error", err)
		return EditResult{}, WrapError(ErrExternalService, err.Error())
	}

	result := EditResult{EditedImage: edited}

	input := SaveGenerationInput{
		EditedImage:   edited,
		Prompt:        req.Prompt,
		IsTextToImage: len(req.Images) == 0,
		IsMultiImage:  len(req.Images) > 1,
	}
	if len(req.Images) > 0 {
		input.OriginalImage = req.Images[0]
	}
	if len(req.Images) > 1 {
		input.OriginalImages = req.Images
	}

	rec, err := s.history.SaveGeneration(ctx, input)
	if err != nil {
		s.logger.WarnContext(ctx, "generation succeeded but history save failed", "error", err)
	} else {
		result.Record = rec
		result.Saved = true
	}

	if _, err := s.prompts.Add(ctx, req.Prompt); err != nil {
		s.logger.WarnContext(ctx, "failed to record prompt history", "error", err)
	}

	return result, nil
}

// GenerateNote calls the model and persists the resulting note.
func (s *generateService) GenerateNote(ctx context.Context, req NoteRequest) (NoteResult, error) {
	if req.Topic == "" {
		return NoteResult{}, &ValidationError{Field: "topic", Message: "cannot be empty"}
	}
	if req.NoteType == "" {
		req.NoteType = storage.NoteCustom
	}

	generated, err := s.ai.GenerateNote(ctx, req.Topic, string(req.NoteType), req.ImageURL)
	if err != nil {
		s.logger.ErrorContext(ctx, "note generation failed", "error", err)
		return NoteResult{}, WrapError(ErrExternalService, err.Error())
	}

	note := &storage.NoteRecord{
		Title:      generated.Title,
		Content:    generated.Content,
		Tags:       generated.Tags,
		NoteType:   req.NoteType,
		InputTopic: req.Topic,
		ImageURL:   req.ImageURL,
	}

	result := NoteResult{Note: note}
	saved, err := s.notes.SaveNote(ctx, note)
	if err != nil {
		s.logger.WarnContext(ctx, "note generated but save failed", "error", err)
	} else {
		result.Note = saved
		result.Saved = true
	}
	return result, nil
}

// RewriteNote revises a stored note per the instruction and writes it back
// under the same ID, so the edit replaces the original in history.
func (s *generateService) RewriteNote(ctx context.Context, req RewriteRequest) (NoteResult, error) {
	if req.NoteID == "" {
		return NoteResult{}, &ValidationError{Field: "id", Message: "cannot be empty"}
	}
	if req.Instruction == "" {
		return NoteResult{}, &ValidationError{Field: "instruction", Message: "cannot be empty"}
	}

	note, err := s.notes.Get(ctx, req.NoteID)
	if err != nil {
		return NoteResult{}, err
	}

	revised, err := s.ai.RewriteNote(ctx, &llm.GeneratedNote{
		Title:   note.Title,
		Content: note.Content,
		Tags:    note.Tags,
	}, req.Instruction)
	if err != nil {
		s.logger.ErrorContext(ctx, "note rewrite failed", "id", req.NoteID, "error", err)
		return NoteResult{}, WrapError(ErrExternalService, err.Error())
	}

	note.Title = revised.Title
	note.Content = revised.Content
	if len(revised.Tags) > 0 {
		note.Tags = revised.Tags
	}
	note.Timestamp = time.Now().UnixMilli()

	return s.saveRevisedNote(ctx, note), nil
}

// ChangeNoteStyle rewrites a stored note's title and content in another
// delivery style. Tags and metadata survive the rewrite.
func (s *generateService) ChangeNoteStyle(ctx context.Context, req StyleRequest) (NoteResult, error) {
	if req.NoteID == "" {
		return NoteResult{}, &ValidationError{Field: "id", Message: "cannot be empty"}
	}
	if !noteStyles[req.Style] {
		return NoteResult{}, &ValidationError{Field: "style", Message: "unknown style"}
	}

	note, err := s.notes.Get(ctx, req.NoteID)
	if err != nil {
		return NoteResult{}, err
	}

	revised, err := s.ai.ChangeNoteStyle(ctx, &llm.GeneratedNote{
		Title:   note.Title,
		Content: note.Content,
	}, req.Style)
	if err != nil {
		s.logger.ErrorContext(ctx, "note style change failed", "id", req.NoteID, "style", req.Style, "error", err)
		return NoteResult{}, WrapError(ErrExternalService, err.Error())
	}

	note.Title = revised.Title
	note.Content = revised.Content
	note.Timestamp = time.Now().UnixMilli()

	return s.saveRevisedNote(ctx, note), nil
}

// GenerateTitles returns alternative titles for a topic. Nothing is
// persisted; the caller picks one and saves the note itself.
func (s *generateService) GenerateTitles(ctx context.Context, req TitlesRequest) ([]string, error) {
	if req.Topic == "" {
		return nil, &ValidationError{Field: "topic", Message: "cannot be empty"}
	}
	if req.NoteType == "" {
		req.NoteType = storage.NoteCustom
	}
	count := req.Count
	if count <= 0 {
		count = DefaultTitleCount
	}

	titles, err := s.ai.GenerateTitles(ctx, req.Topic, string(req.NoteType), count)
	if err != nil {
		s.logger.ErrorContext(ctx, "title generation failed", "error", err)
		return nil, WrapError(ErrExternalService, err.Error())
	}
	return titles, nil
}

// EnhancePrompt expands a user prompt for image generation. A model failure
// returns the original prompt so the edit flow is never blocked on the
// enhancement.
func (s *generateService) EnhancePrompt(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", &ValidationError{Field: "prompt", Message: "cannot be empty"}
	}

	enhanced, err := s.ai.EnhancePrompt(ctx, prompt)
	if err != nil {
		s.logger.WarnContext(ctx, "prompt enhancement failed, keeping original", "error", err)
		return prompt, nil
	}
	return enhanced, nil
}

// saveRevisedNote writes an edited note back, best-effort like the other
// generation flows.
func (s *generateService) saveRevisedNote(ctx context.Context, note *storage.NoteRecord) NoteResult {
	result := NoteResult{Note: note}
	saved, err := s.notes.SaveNote(ctx, note)
	if err != nil {
		s.logger.WarnContext(ctx, "note revised but save failed", "id", note.ID, "error", err)
	} else {
		result.Note = saved
		result.Saved = true
	}
	return result
}
