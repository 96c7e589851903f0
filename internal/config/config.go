package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	DBPath            string
	LegacyDumpPath    string
	APIPort           string
	LogLevel          slog.Level
	LogFormat         string
	GeminiAPIKey      string
	GeminiImageModel  string
	GeminiTextModel   string
	GenerationCap     int
	NoteCap           int
	PromptCap         int
	CompressMaxWidth  int
	CompressMaxHeight int
	CompressQuality   int
	StorageQuotaBytes int64
}

// Load reads configuration from environment variables and returns a Config
// struct. It applies defaults for optional fields and validates required
// fields. If a .env file exists in the current directory or project root,
// it will be loaded automatically. Environment variables already set take
// precedence over .env file values.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	// Check current directory first, then walk up to find project root (where go.mod is)
	_ = godotenv.Load() // Try current directory

	// Try to find project root by looking for go.mod
	wd, err := os.Getwd()
	if err == nil {
		dir := wd
		for i := 0; i < 5; i++ { // Limit search depth
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break // Reached filesystem root
			}
			dir = parent
		}
	}

	cfg := &Config{
		DBPath:           getEnv("DB_PATH", "./data/banana-studio.db"),
		LegacyDumpPath:   getEnv("LEGACY_DUMP_PATH", "./data/legacy-localstorage.json"),
		APIPort:          getEnv("API_PORT", "9000"),
		LogFormat:        getEnv("LOG_FORMAT", "text"),
		GeminiAPIKey:     getEnv("GEMINI_API_KEY", ""),
		GeminiImageModel: getEnv("GEMINI_IMAGE_MODEL", ""),
		GeminiTextModel:  getEnv("GEMINI_TEXT_MODEL", ""),
	}

	level, err := parseLogLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	if cfg.GenerationCap, err = getEnvInt("GENERATION_DISPLAY_CAP", 20); err != nil {
		return nil, err
	}
	if cfg.NoteCap, err = getEnvInt("NOTE_DISPLAY_CAP", 20); err != nil {
		return nil, err
	}
	if cfg.PromptCap, err = getEnvInt("PROMPT_HISTORY_MAX", 10); err != nil {
		return nil, err
	}
	if cfg.CompressMaxWidth, err = getEnvInt("COMPRESS_MAX_WIDTH", 1280); err != nil {
		return nil, err
	}
	if cfg.CompressMaxHeight, err = getEnvInt("COMPRESS_MAX_HEIGHT", 1280); err != nil {
		return nil, err
	}
	if cfg.CompressQuality, err = getEnvInt("COMPRESS_QUALITY", 75); err != nil {
		return nil, err
	}

	quota, err := getEnvInt("STORAGE_QUOTA_BYTES", 0)
	if err != nil {
		return nil, err
	}
	cfg.StorageQuotaBytes = int64(quota)

	// Validate required fields
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	if cfg.CompressQuality < 1 || cfg.CompressQuality > 100 {
		return nil, fmt.Errorf("COMPRESS_QUALITY must be between 1 and 100")
	}

	// Create ./data directory if it doesn't exist (for the DB file)
	dataDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

// parseLogLevel converts a level string to a slog.Level.
func parseLogLevel(raw string) (slog.Level, error) {
	switch strings.ToLower(raw) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", raw)
	}
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer environment variable or returns a default.
func getEnvInt(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid integer: %w", key, err)
	}
	if value < 0 {
		return 0, fmt.Errorf("%s must not be negative", key)
	}
	return value, nil
}
