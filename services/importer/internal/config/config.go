package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultSurveyPath   = "static/mirpur_60ft.geojson"
	defaultFetchTimeout = 30 * time.Second
)

// Config holds runtime configuration for the importer.
type Config struct {
	DatabaseURL  string
	SurveyURL    string
	SurveyPath   string
	FetchTimeout time.Duration
	DryRun       bool
}

// Load reads configuration from environment variables (optionally .env).
func Load() (Config, error) {
	_ = godotenv.Load(".env")

	cfg := Config{}

	dryRun := strings.TrimSpace(os.Getenv("DRY_RUN"))
	cfg.DryRun = dryRun == "1" || strings.EqualFold(dryRun, "true")

	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if cfg.DatabaseURL == "" && !cfg.DryRun {
		return cfg, errors.New("DATABASE_URL is required unless DRY_RUN is set")
	}

	cfg.SurveyURL = strings.TrimSpace(os.Getenv("SURVEY_URL"))
	cfg.SurveyPath = strings.TrimSpace(os.Getenv("SURVEY_PATH"))
	if cfg.SurveyURL == "" && cfg.SurveyPath == "" {
		cfg.SurveyPath = defaultSurveyPath
	}

	cfg.FetchTimeout = defaultFetchTimeout
	if v := strings.TrimSpace(os.Getenv("FETCH_TIMEOUT")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid FETCH_TIMEOUT: %w", err)
		}
		if d <= 0 {
			return cfg, fmt.Errorf("invalid FETCH_TIMEOUT: %s", v)
		}
		cfg.FetchTimeout = d
	}

	return cfg, nil
}
