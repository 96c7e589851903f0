package main

import (
	"context"
	_ "embed"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"banana-studio/internal/config"
	"banana-studio/internal/http"
	"banana-studio/internal/imageutil"
	"banana-studio/internal/legacy"
	"banana-studio/internal/llm"
	"banana-studio/internal/service"
	"banana-studio/internal/storage"
)

//go:embed index.html
var indexHTML string

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	ctx := context.Background()

	// Open the record store
	store := storage.NewStore(cfg.DBPath, storage.WithQuota(cfg.StorageQuotaBytes))
	if err := store.Init(ctx); err != nil {
		log.Fatalf("Failed to open record store: %v", err)
	}
	defer func() {
		_ = store.Close()
	}()
	slog.Info("Record store initialized", "path", cfg.DBPath)

	// Create repository instances
	generationRepo := storage.NewGenerationRepo(store, cfg.GenerationCap)
	noteRepo := storage.NewNoteRepo(store, cfg.NoteCap)
	promptRepo := storage.NewPromptRepo(store, cfg.PromptCap)

	// Migrate legacy localStorage-era data before history is first read.
	// Migration is best-effort: a failure preserves the legacy dump for a
	// retry on next startup.
	migrator := legacy.NewMigrator(legacy.NewFileSource(cfg.LegacyDumpPath), generationRepo, promptRepo)
	result := migrator.Run(ctx)
	if result.Success {
		if result.MigratedCount > 0 {
			slog.Info("Legacy data migrated", "records", result.MigratedCount)
		}
	} else {
		slog.Warn("Legacy migration incomplete, will retry on next start", "migrated", result.MigratedCount)
	}

	// Create the Gemini client (external service layer)
	geminiOpts := []llm.GeminiOption{}
	if cfg.GeminiImageModel != "" {
		geminiOpts = append(geminiOpts, llm.WithImageModel(cfg.GeminiImageModel))
	}
	if cfg.GeminiTextModel != "" {
		geminiOpts = append(geminiOpts, llm.WithTextModel(cfg.GeminiTextModel))
	}
	aiClient, err := llm.NewGemini(ctx, cfg.GeminiAPIKey, geminiOpts...)
	if err != nil {
		log.Fatalf("Failed to create Gemini client: %v", err)
	}

	// Create services
	historyService := service.NewHistoryService(
		generationRepo,
		service.CompressorFunc(imageutil.Compress),
		cfg.CompressMaxWidth,
		cfg.CompressMaxHeight,
		cfg.CompressQuality,
	)
	promptService := service.NewPromptService(promptRepo, cfg.PromptCap)
	noteService := service.NewNoteService(noteRepo)
	generateService := service.NewGenerateService(aiClient, historyService, promptService, noteService)

	// Create router with dependencies
	deps := &http.Deps{
		Store:           store,
		HistoryService:  historyService,
		PromptService:   promptService,
		NoteService:     noteService,
		GenerateService: generateService,
		IndexHTML:       indexHTML,
	}
	router := http.NewRouter(deps)

	// Start API server
	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}
