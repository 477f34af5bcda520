package config

import (
	"runtime"
	"strconv"
	"strings"

	"go.trai.ch/shelf/internal/core/domain"
	"go.trai.ch/zerr"
)

// Environment variables read by LoadSettings.
const (
	EnvShelfPath = "SHELF_PATH"
	EnvLogLevel  = "SHELF_LOG_LEVEL"
	EnvJobs      = "SHELF_JOBS"
)

// LoadSettings builds domain.Settings from environment lookups.
func LoadSettings(getenv func(string) string) (domain.Settings, error) {
	settings := domain.Settings{
		ShelfPath: strings.TrimSpace(getenv(EnvShelfPath)),
		LogLevel:  domain.ParseLogLevel(getenv(EnvLogLevel)),
		Jobs:      runtime.NumCPU(),
	}
	if settings.ShelfPath == "" {
		settings.ShelfPath = domain.DefaultShelfPath()
	}

	if raw := strings.TrimSpace(getenv(EnvJobs)); raw != "" {
		jobs, err := strconv.Atoi(raw)
		if err != nil || jobs < 1 {
			return domain.Settings{}, zerr.With(zerr.New("jobs must be a positive integer"), EnvJobs, raw)
		}
		settings.Jobs = jobs
	}

	return settings, nil
}
