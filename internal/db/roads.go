package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/paulmach/orb/geojson"

	"github.com/02loveslollipop/mirpur-road-survey/internal/survey"
)

const upsertRoadSQL = `INSERT INTO survey.roads (id, properties, geometry, position, imported_at, updated_at)
VALUES ($1,$2,$3,$4,NOW(),NOW())
ON CONFLICT (id) DO UPDATE
SET properties = EXCLUDED.properties,
    geometry = EXCLUDED.geometry,
    position = EXCLUDED.position,
    updated_at = NOW()`

// UpsertRoads inserts or updates roads, keeping their document order.
func (s *Store) UpsertRoads(ctx context.Context, roads []survey.Road) error {
	if len(roads) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for i, r := range roads {
		props, geom, err := encodeRoad(r)
		if err != nil {
			return fmt.Errorf("encode road %s: %w", r.ID, err)
		}
		batch.Queue(upsertRoadSQL, string(r.ID), props, geom, i)
	}

	res := s.pool.SendBatch(ctx, batch)
	defer res.Close()

	for range roads {
		if _, err := res.Exec(); err != nil {
			return err
		}
	}

	return nil
}

func encodeRoad(r survey.Road) (props, geom []byte, err error) {
	props, err = json.Marshal(r.Properties())
	if err != nil {
		return nil, nil, err
	}
	if r.Geometry != nil {
		geom, err = json.Marshal(geojson.NewGeometry(r.Geometry))
		if err != nil {
			return nil, nil, err
		}
	}
	return props, geom, nil
}

const listRoadsSQL = `
    SELECT id, properties, geometry
    FROM survey.roads
    ORDER BY position, id
`

// ListRoads returns all stored roads as a GeoJSON FeatureCollection.
func (s *Store) ListRoads(ctx context.Context) ([]byte, error) {
	rows, err := s.pool.Query(ctx, listRoadsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fc := geojson.NewFeatureCollection()
	for rows.Next() {
		var (
			id    string
			props []byte
			geom  []byte
		)
		if err := rows.Scan(&id, &props, &geom); err != nil {
			return nil, err
		}
		f, err := decodeRow(id, props, geom)
		if err != nil {
			return nil, fmt.Errorf("road %s: %w", id, err)
		}
		fc.Append(f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return fc.MarshalJSON()
}

func decodeRow(id string, props, geom []byte) (*geojson.Feature, error) {
	f := geojson.NewFeature(nil)
	f.ID = id
	if err := json.Unmarshal(props, &f.Properties); err != nil {
		return nil, fmt.Errorf("decode properties: %w", err)
	}
	if len(geom) > 0 {
		g, err := geojson.UnmarshalGeometry(geom)
		if err != nil {
			return nil, fmt.Errorf("decode geometry: %w", err)
		}
		f.Geometry = g.Geometry()
	}
	return f, nil
}

// CountRoads returns the number of stored roads.
func (s *Store) CountRoads(ctx context.Context) (int, error) {
	var n int
	err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM survey.roads`).Scan(&n)
	return n, err
}

// Name identifies the store as a survey source.
func (s *Store) Name() string { return "postgres" }

// Fetch returns the stored roads as a survey document.
func (s *Store) Fetch(ctx context.Context) ([]byte, error) {
	return s.ListRoads(ctx)
}
