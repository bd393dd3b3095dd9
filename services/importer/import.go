package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/02loveslollipop/mirpur-road-survey/internal/survey"
)

// roadWriter is the part of the Postgres store the importer needs.
type roadWriter interface {
	EnsureSchema(ctx context.Context) error
	UpsertRoads(ctx context.Context, roads []survey.Road) error
	CountRoads(ctx context.Context) (int, error)
}

// summary counts roads per surface type for the import log.
type summary struct {
	Rigid        int
	Flexible     int
	Other        int
	WasteManaged int
}

func summarize(coll *survey.Collection) summary {
	var s summary
	for _, r := range coll.Roads() {
		switch r.Width.Type {
		case survey.RoadTypeRigid:
			s.Rigid++
		case survey.RoadTypeFlexible:
			s.Flexible++
		default:
			s.Other++
		}
		if r.WasteManagement {
			s.WasteManaged++
		}
	}
	return s
}

// importRoads writes coll through w. A nil writer is a dry run: every road
// is logged and nothing is written.
func importRoads(ctx context.Context, log *slog.Logger, w roadWriter, coll *survey.Collection) error {
	sum := summarize(coll)
	log.Info("prepared roads",
		"total", coll.Len(),
		"rigid", sum.Rigid,
		"flexible", sum.Flexible,
		"other", sum.Other,
		"waste_managed", sum.WasteManaged,
		"dry_run", w == nil,
	)

	if w == nil {
		for _, r := range coll.Roads() {
			log.Info("dry-run: would upsert road", "id", r.ID, "type", r.Width.Type)
		}
		return nil
	}

	if err := w.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	if err := w.UpsertRoads(ctx, coll.Roads()); err != nil {
		return fmt.Errorf("upsert roads: %w", err)
	}
	stored, err := w.CountRoads(ctx)
	if err != nil {
		return fmt.Errorf("count roads: %w", err)
	}
	log.Info("upserted roads", "count", coll.Len(), "stored", stored)
	return nil
}
