package config

import (
	"strings"
	"testing"
	"time"
)

var envKeys = []string{
	"PORT", "API_PORT", "API_BEARER_TOKEN", "SURVEY_SOURCE", "SURVEY_PATH",
	"SURVEY_URL", "DATABASE_URL", "FETCH_TIMEOUT", "STATIC_DIR", "TILE_URL",
	"TILE_ATTRIBUTION", "MAP_CENTER_LAT", "MAP_CENTER_LON", "MAP_ZOOM",
	"SESSION_CAPACITY", "EVENT_RATE_LIMIT", "EVENT_RATE_BURST",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ListenAddr() != ":8080" {
		t.Errorf("unexpected listen addr %s", cfg.ListenAddr())
	}
	if cfg.SurveySource != SourceFile || cfg.SurveyPath != defaultSurveyPath {
		t.Errorf("unexpected survey source %s %s", cfg.SurveySource, cfg.SurveyPath)
	}
	if cfg.FetchTimeout != 30*time.Second {
		t.Errorf("unexpected fetch timeout %s", cfg.FetchTimeout)
	}
	if cfg.Map.View.Zoom != 15 || cfg.Map.Tiles.Opacity != 0.9 {
		t.Errorf("unexpected map config %+v", cfg.Map)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_PORT", "9090")
	t.Setenv("SURVEY_SOURCE", "HTTP")
	t.Setenv("SURVEY_URL", "https://example.org/mirpur_60ft.geojson")
	t.Setenv("FETCH_TIMEOUT", "5s")
	t.Setenv("MAP_CENTER_LAT", "23.8")
	t.Setenv("MAP_ZOOM", "17")
	t.Setenv("SESSION_CAPACITY", "16")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != 9090 || cfg.SurveySource != SourceHTTP || cfg.FetchTimeout != 5*time.Second {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.Map.View.Center[0] != 23.8 || cfg.Map.View.Zoom != 17 || cfg.SessionCapacity != 16 {
		t.Errorf("unexpected map/session config %+v", cfg)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		key, value, match string
	}{
		{"PORT", "abc", "invalid PORT"},
		{"SURVEY_SOURCE", "s3", "invalid SURVEY_SOURCE"},
		{"SURVEY_SOURCE", "http", "SURVEY_URL is required"},
		{"SURVEY_SOURCE", "postgres", "DATABASE_URL is required"},
		{"FETCH_TIMEOUT", "soon", "invalid FETCH_TIMEOUT"},
		{"MAP_ZOOM", "30", "invalid MAP_ZOOM"},
		{"MAP_CENTER_LON", "200", "invalid MAP_CENTER_LON"},
		{"EVENT_RATE_BURST", "0", "invalid EVENT_RATE_BURST"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			if err == nil || !strings.Contains(err.Error(), tt.match) {
				t.Fatalf("expected error containing %q, got %v", tt.match, err)
			}
		})
	}
}
