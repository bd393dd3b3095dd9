package main

import (
	"context"
	"net/http"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/02loveslollipop/mirpur-road-survey/internal/db"
	"github.com/02loveslollipop/mirpur-road-survey/internal/loader"
	"github.com/02loveslollipop/mirpur-road-survey/internal/logger"
	"github.com/02loveslollipop/mirpur-road-survey/internal/survey"
	"github.com/02loveslollipop/mirpur-road-survey/services/importer/internal/config"
)

func main() {
	log := logger.Setup()
	if err := run(); err != nil {
		log.Error("importer failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	log := logger.L()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*cfg.FetchTimeout)
	defer cancel()

	var source loader.Source = loader.FileSource{Path: cfg.SurveyPath}
	if cfg.SurveyURL != "" {
		source = loader.HTTPSource{URL: cfg.SurveyURL, Client: &http.Client{Timeout: cfg.FetchTimeout}}
	}

	var (
		coll  *survey.Collection
		store *db.Store
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		raw, err := source.Fetch(gctx)
		if err != nil {
			return err
		}
		coll, err = survey.Decode(raw)
		return err
	})
	if !cfg.DryRun {
		g.Go(func() error {
			var err error
			if store, err = db.New(ctx, cfg.DatabaseURL); err != nil {
				return err
			}
			return store.Ping(gctx)
		})
	}
	err = g.Wait()
	if store != nil {
		defer store.Close()
	}
	if err != nil {
		return err
	}
	log.Info("decoded survey", "source", source.Name(), "roads", coll.Len())

	if store == nil {
		return importRoads(ctx, log, nil, coll)
	}
	return importRoads(ctx, log, store, coll)
}
