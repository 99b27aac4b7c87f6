// Package cli provides common CLI initialization utilities.
// This package consolidates repeated initialization patterns across
// cmd/okane and cmd/okane-edit.
package cli

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"okane/internal/config"
	"okane/internal/log"
	"okane/internal/storage"
)

// Init loads the environment, builds the configuration and sets up logging
// at the configured level. Exits the process on validation failure.
func Init() (*log.Logger, *config.Config) {
	LoadEnvFile()
	cfg := config.Load()
	logger := SetupLogger(cfg.LogLevel)
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", log.FieldError, err)
		os.Exit(1)
	}
	return logger, cfg
}

// SetupLogger initializes structured logging at the given level and sets it
// as the default logger. Records go to stderr so stdout stays free for
// report output.
func SetupLogger(level slog.Level) *log.Logger {
	logger := log.New(log.Config{Level: level, Component: log.ComponentApp})
	log.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// OpenLedger opens and loads the ledger file at path.
// Returns the repository and document or exits the process on failure.
func OpenLedger(logger *log.Logger, path string) (*storage.FileRepository, storage.Document) {
	repo := storage.NewFileRepository(path, logger)
	doc, err := repo.Load()
	if err != nil {
		logger.Error("Failed to load ledger", log.FieldError, err, log.FieldFile, path)
		os.Exit(1)
	}
	return repo, doc
}
