package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/02loveslollipop/mirpur-road-survey/internal/mapview"
	"github.com/02loveslollipop/mirpur-road-survey/internal/session"
)

// Survey sources selectable with SURVEY_SOURCE.
const (
	SourceFile     = "file"
	SourceHTTP     = "http"
	SourcePostgres = "postgres"
)

const (
	defaultSurveyPath   = "static/mirpur_60ft.geojson"
	defaultStaticDir    = "static"
	defaultFetchTimeout = 30 * time.Second
)

// Config holds environment-driven settings for the map API.
type Config struct {
	Port        int
	BearerToken string

	SurveySource string
	SurveyPath   string
	SurveyURL    string
	DatabaseURL  string
	FetchTimeout time.Duration
	StaticDir    string

	Map mapview.Config

	SessionCapacity int
	EventRateLimit  float64
	EventRateBurst  int
}

// Load reads configuration from environment variables (optionally .env).
func Load() (Config, error) {
	_ = godotenv.Load() // ignore missing file

	cfg := Config{
		Port:            8080,
		SurveySource:    SourceFile,
		SurveyPath:      defaultSurveyPath,
		FetchTimeout:    defaultFetchTimeout,
		StaticDir:       defaultStaticDir,
		Map:             mapview.DefaultConfig(),
		SessionCapacity: session.DefaultCapacity,
		EventRateLimit:  50,
		EventRateBurst:  100,
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil && port > 0 {
			cfg.Port = port
		} else {
			return cfg, fmt.Errorf("invalid PORT: %s", portStr)
		}
	} else if portStr := os.Getenv("API_PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil && port > 0 {
			cfg.Port = port
		} else {
			return cfg, fmt.Errorf("invalid API_PORT: %s", portStr)
		}
	}

	cfg.BearerToken = os.Getenv("API_BEARER_TOKEN")

	if src := strings.ToLower(strings.TrimSpace(os.Getenv("SURVEY_SOURCE"))); src != "" {
		cfg.SurveySource = src
	}
	if path := strings.TrimSpace(os.Getenv("SURVEY_PATH")); path != "" {
		cfg.SurveyPath = path
	}
	cfg.SurveyURL = strings.TrimSpace(os.Getenv("SURVEY_URL"))
	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))

	switch cfg.SurveySource {
	case SourceFile:
	case SourceHTTP:
		if cfg.SurveyURL == "" {
			return cfg, errors.New("SURVEY_URL is required when SURVEY_SOURCE=http")
		}
	case SourcePostgres:
		if cfg.DatabaseURL == "" {
			return cfg, errors.New("DATABASE_URL is required when SURVEY_SOURCE=postgres")
		}
	default:
		return cfg, fmt.Errorf("invalid SURVEY_SOURCE: %s", cfg.SurveySource)
	}

	if v := strings.TrimSpace(os.Getenv("FETCH_TIMEOUT")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return cfg, fmt.Errorf("invalid FETCH_TIMEOUT: %s", v)
		}
		cfg.FetchTimeout = d
	}

	if dir := strings.TrimSpace(os.Getenv("STATIC_DIR")); dir != "" {
		cfg.StaticDir = dir
	}

	if v := os.Getenv("TILE_URL"); v != "" {
		cfg.Map.Tiles.URL = v
	}
	if v := os.Getenv("TILE_ATTRIBUTION"); v != "" {
		cfg.Map.Tiles.Attribution = v
	}
	if v := os.Getenv("MAP_CENTER_LAT"); v != "" {
		lat, err := strconv.ParseFloat(v, 64)
		if err != nil || lat < -90 || lat > 90 {
			return cfg, fmt.Errorf("invalid MAP_CENTER_LAT: %s", v)
		}
		cfg.Map.View.Center[0] = lat
	}
	if v := os.Getenv("MAP_CENTER_LON"); v != "" {
		lon, err := strconv.ParseFloat(v, 64)
		if err != nil || lon < -180 || lon > 180 {
			return cfg, fmt.Errorf("invalid MAP_CENTER_LON: %s", v)
		}
		cfg.Map.View.Center[1] = lon
	}
	if v := os.Getenv("MAP_ZOOM"); v != "" {
		zoom, err := strconv.Atoi(v)
		if err != nil || zoom < 0 || zoom > 22 {
			return cfg, fmt.Errorf("invalid MAP_ZOOM: %s", v)
		}
		cfg.Map.View.Zoom = zoom
	}

	if v := os.Getenv("SESSION_CAPACITY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SessionCapacity = n
		} else {
			return cfg, fmt.Errorf("invalid SESSION_CAPACITY: %s", v)
		}
	}

	if v := os.Getenv("EVENT_RATE_LIMIT"); v != "" {
		if r, err := strconv.ParseFloat(v, 64); err == nil && r > 0 {
			cfg.EventRateLimit = r
		} else {
			return cfg, fmt.Errorf("invalid EVENT_RATE_LIMIT: %s", v)
		}
	}
	if v := os.Getenv("EVENT_RATE_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.EventRateBurst = n
		} else {
			return cfg, fmt.Errorf("invalid EVENT_RATE_BURST: %s", v)
		}
	}

	return cfg, nil
}

// ListenAddr returns the host:port string for the HTTP server.
func (c Config) ListenAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}
