package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/02loveslollipop/mirpur-road-survey/internal/db"
	"github.com/02loveslollipop/mirpur-road-survey/internal/loader"
	"github.com/02loveslollipop/mirpur-road-survey/internal/logger"
	"github.com/02loveslollipop/mirpur-road-survey/internal/session"
	"github.com/02loveslollipop/mirpur-road-survey/services/api/config"
	httpserver "github.com/02loveslollipop/mirpur-road-survey/services/api/http"
)

func main() {
	log := logger.Setup()

	cfg, err := config.Load()
	if err != nil {
		log.Error("config error", "error", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var source loader.Source
	switch cfg.SurveySource {
	case config.SourceHTTP:
		source = loader.HTTPSource{URL: cfg.SurveyURL, Client: &http.Client{Timeout: cfg.FetchTimeout}}
	case config.SourcePostgres:
		store, err := db.New(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Error("db connection error", "error", err)
			os.Exit(1)
		}
		defer store.Close()
		source = store
	default:
		source = loader.FileSource{Path: cfg.SurveyPath}
	}

	// The map is served before the survey arrives; a failed load leaves
	// the base map without an overlay.
	loadCtx, cancelLoad := context.WithTimeout(ctx, cfg.FetchTimeout)
	defer cancelLoad()
	survey := loader.New(source, log)
	survey.Start(loadCtx)

	sessions, err := session.New(cfg.SessionCapacity)
	if err != nil {
		log.Error("session store error", "error", err)
		os.Exit(1)
	}

	srv := httpserver.New(cfg, survey, sessions, log)
	log.Info("map viewer listening", "addr", cfg.ListenAddr(), "survey_source", source.Name())

	if err := srv.Run(ctx); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
