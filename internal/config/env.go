package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// EnvAPIKey is the variable holding the static-map API key
const EnvAPIKey = "API_KEY"

// LoadEnv loads variables from .env files into the process environment.
// Variables already set are left untouched. A missing file is skipped; the
// API key then has to come from the real environment.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				log.Debug().Str("path", path).Msg("No .env file found, using process environment")
				continue
			}
			return err
		}
		log.Debug().Str("path", path).Msg("Loaded .env file")
	}
	return nil
}

// DefaultEnvPaths returns the working-directory .env followed by the one next
// to the executable, without duplicates.
func DefaultEnvPaths() []string {
	paths := []string{".env"}
	exe, err := os.Executable()
	if err != nil {
		return paths
	}
	exeEnv := filepath.Join(filepath.Dir(exe), ".env")
	if abs, err := filepath.Abs(".env"); err == nil && abs == exeEnv {
		return paths
	}
	return append(paths, exeEnv)
}
