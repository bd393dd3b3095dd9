package config

import (
	"strings"
	"testing"
	"time"
)

func setEnv(t *testing.T, kv map[string]string) {
	t.Helper()
	for _, k := range []string{"DATABASE_URL", "SURVEY_URL", "SURVEY_PATH", "FETCH_TIMEOUT", "DRY_RUN"} {
		t.Setenv(k, kv[k])
	}
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	setEnv(t, nil)
	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "DATABASE_URL") {
		t.Fatalf("expected DATABASE_URL error, got %v", err)
	}
}

func TestLoadDryRunWithoutDatabase(t *testing.T) {
	setEnv(t, map[string]string{"DRY_RUN": "1"})
	cfg, err := Load()
	if err != nil {
		t.Fatalf("dry run should not need DATABASE_URL: %v", err)
	}
	if !cfg.DryRun || cfg.DatabaseURL != "" {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestLoadDefaults(t *testing.T) {
	setEnv(t, map[string]string{"DATABASE_URL": "postgres://localhost/survey"})
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.SurveyPath != defaultSurveyPath || cfg.SurveyURL != "" {
		t.Errorf("unexpected source %q %q", cfg.SurveyPath, cfg.SurveyURL)
	}
	if cfg.FetchTimeout != defaultFetchTimeout || cfg.DryRun {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestLoadURLSourceAndDryRun(t *testing.T) {
	setEnv(t, map[string]string{
		"DATABASE_URL":  "postgres://localhost/survey",
		"SURVEY_URL":    "https://example.org/mirpur_60ft.geojson",
		"FETCH_TIMEOUT": "10s",
		"DRY_RUN":       "TRUE",
	})
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.SurveyPath != "" || cfg.FetchTimeout != 10*time.Second || !cfg.DryRun {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	for _, v := range []string{"later", "-1s"} {
		setEnv(t, map[string]string{"DATABASE_URL": "postgres://x", "FETCH_TIMEOUT": v})
		if _, err := Load(); err == nil || !strings.Contains(err.Error(), "invalid FETCH_TIMEOUT") {
			t.Errorf("FETCH_TIMEOUT=%s: expected error, got %v", v, err)
		}
	}
}
