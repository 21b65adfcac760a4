package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// loadEnv loads a .env file into the process environment. Variables that are
// already set win over the file.
//
// An explicit path must exist. Without one, .env in the working directory is
// loaded if present.
func loadEnv(logger *slog.Logger, path string) error {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("load env file: %w", err)
		}
		logger.Debug("loaded env file", slog.String("path", path))
		return nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil
	}
	candidate := filepath.Join(cwd, ".env")
	if _, err := os.Stat(candidate); err != nil {
		logger.Debug("no env file found", slog.String("path", candidate))
		return nil
	}
	if err := godotenv.Load(candidate); err != nil {
		logger.Warn("failed to load env file",
			slog.String("path", candidate),
			slog.String("error", err.Error()))
		return nil
	}
	logger.Debug("loaded env file", slog.String("path", candidate))
	return nil
}
