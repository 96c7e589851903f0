package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_history_service.go -package=mocks -mock_names=HistoryService=MockHistoryService banana-studio/internal/service HistoryService
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_compressor.go -package=mocks banana-studio/internal/service Compressor

import (
	"context"
	"log/slog"
	"time"

	"banana-studio/internal/imageutil"
	"banana-studio/internal/storage"
)

// Compressor recompresses a data-URL image to bound storage growth.
// This interface is defined from the service layer's perspective
// (consumer-first); imageutil provides the real implementation.
type Compressor interface {
	Compress(dataURL string, maxWidth, maxHeight, quality int) (string, error)
}

// CompressorFunc adapts a plain function to the Compressor interface.
type CompressorFunc func(dataURL string, maxWidth, maxHeight, quality int) (string, error)

func (f CompressorFunc) Compress(dataURL string, maxWidth, maxHeight, quality int) (string, error) {
	return f(dataURL, maxWidth, maxHeight, quality)
}

// SaveGenerationInput carries one AI edit result into the history.
type SaveGenerationInput struct {
	OriginalImage  string
	OriginalImages []string
	EditedImage    string
	Prompt         string
	IsMultiImage   bool
	IsTextToImage  bool
}

// HistoryService manages the generation history.
type HistoryService interface {
	// SaveGeneration compresses the images and persists a new record.
	// Compression failures fall back to the original bytes and never
	// surface; store failures do.
	SaveGeneration(ctx context.Context, input SaveGenerationInput) (*storage.GenerationRecord, error)
	// List returns the most recent records, capped at the display cap.
	List(ctx context.Context, limit int) ([]*storage.GenerationRecord, error)
	// Delete removes one record by ID.
	Delete(ctx context.Context, id string) error
	// Clear removes the whole history.
	Clear(ctx context.Context) error
}

// historyService implements HistoryService.
type historyService struct {
	generations storage.GenerationStore
	compressor  Compressor
	maxWidth    int
	maxHeight   int
	quality     int
	logger      *slog.Logger
}

// NewHistoryService creates a HistoryService. Zero compression bounds
// select the imageutil defaults.
func NewHistoryService(generations storage.GenerationStore, compressor Compressor, maxWidth, maxHeight, quality int) HistoryService {
	if maxWidth <= 0 {
		maxWidth = imageutil.DefaultMaxWidth
	}
	if maxHeight <= 0 {
		maxHeight = imageutil.DefaultMaxHeight
	}
	if quality <= 0 {
		quality = imageutil.DefaultQuality
	}
	return &historyService{
		generations: generations,
		compressor:  compressor,
		maxWidth:    maxWidth,
		maxHeight:   maxHeight,
		quality:     quality,
		logger:      slog.Default(),
	}
}

// SaveGeneration builds and persists a generation record.
func (s *historyService) SaveGeneration(ctx context.Context, input SaveGenerationInput) (*storage.GenerationRecord, error) {
	if input.EditedImage == "" {
		return nil, &ValidationError{Field: "editedImage", Message: "cannot be empty"}
	}

	rec := &storage.GenerationRecord{
		ID:            NewRecordID("gen"),
		OriginalImage: s.compressOrOriginal(ctx, input.OriginalImage),
		EditedImage:   s.compressOrOriginal(ctx, input.EditedImage),
		Prompt:        input.Prompt,
		Timestamp:     time.Now().UnixMilli(),
		IsMultiImage:  input.IsMultiImage,
		IsTextToImage: input.IsTextToImage,
	}
	if len(input.OriginalImages) > 0 {
		rec.OriginalImages = make([]string, 0, len(input.OriginalImages))
		for _, img := range input.OriginalImages {
			rec.OriginalImages = append(rec.OriginalImages, s.compressOrOriginal(ctx, img))
		}
	}

	if err := s.generations.Save(ctx, rec); err != nil {
		s.logger.ErrorContext(ctx, "failed to save generation record", "id", rec.ID, "error", err)
		return nil, WrapError(err, "save generation record")
	}

	s.logger.InfoContext(ctx, "generation record saved",
		"id", rec.ID,
		"edited_size", imageutil.FormatSize(imageutil.Size(rec.EditedImage)),
	)
	return rec, nil
}

// compressOrOriginal recompresses one image, falling back to the input
// bytes untouched when compression fails for any reason.
func (s *historyService) compressOrOriginal(ctx context.Context, dataURL string) string {
	if dataURL == "" {
		return ""
	}
	compressed, err := s.compressor.Compress(dataURL, s.maxWidth, s.maxHeight, s.quality)
	if err != nil {
		s.logger.WarnContext(ctx, "image compression failed, storing original bytes", "error", err)
		return dataURL
	}
	return compressed
}

func (s *historyService) List(ctx context.Context, limit int) ([]*storage.GenerationRecord, error) {
	return s.generations.List(ctx, limit)
}

func (s *historyService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return &ValidationError{Field: "id", Message: "cannot be empty"}
	}
	return s.generations.Delete(ctx, id)
}

func (s *historyService) Clear(ctx context.Context) error {
	return s.generations.Clear(ctx)
}
