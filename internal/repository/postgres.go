package repository

import (
	"context"
	"fmt"

	"provincemap/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
	CREATE EXTENSION IF NOT EXISTS postgis;

	CREATE TABLE IF NOT EXISTS notable_matches (
		ordinal INTEGER PRIMARY KEY,
		marker_id TEXT NOT NULL UNIQUE,
		province VARCHAR(255) NOT NULL,
		place VARCHAR(255) NOT NULL,
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL,
		geom GEOGRAPHY(POINT, 4326) GENERATED ALWAYS AS (
			ST_SetSRID(ST_MakePoint(longitude, latitude), 4326)::geography
		) STORED
	);
	CREATE INDEX IF NOT EXISTS notable_matches_geom_idx ON notable_matches USING GIST (geom);
	CREATE INDEX IF NOT EXISTS notable_matches_province_idx ON notable_matches (province);
`

// Repository stores the notable match table in PostgreSQL/PostGIS
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// EnsureSchema creates the notable_matches table and its indexes if needed
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("repository: failed to create schema: %w", err)
	}
	return nil
}

// ReplaceMatches swaps the stored table for matches in a single transaction
func (r *Repository) ReplaceMatches(ctx context.Context, matches []models.NotableMatch) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "TRUNCATE notable_matches"); err != nil {
		return 0, fmt.Errorf("repository: failed to truncate matches: %w", err)
	}

	n, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{"notable_matches"},
		[]string{"ordinal", "marker_id", "province", "place", "latitude", "longitude"},
		pgx.CopyFromSlice(len(matches), func(i int) ([]any, error) {
			m := matches[i]
			return []any{int32(m.Ordinal), m.MarkerID, m.Province, m.Place, m.Latitude, m.Longitude}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to copy matches: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("repository: failed to commit matches: %w", err)
	}
	return n, nil
}

// ListMatches returns the stored table in ordinal order
func (r *Repository) ListMatches(ctx context.Context) ([]models.NotableMatch, error) {
	sql := `
		SELECT
			ordinal,
			marker_id,
			province,
			place,
			latitude,
			longitude
		FROM notable_matches
		ORDER BY ordinal
	`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query matches: %w", err)
	}
	defer rows.Close()

	matches := []models.NotableMatch{}
	for rows.Next() {
		var m models.NotableMatch
		err := rows.Scan(
			&m.Ordinal,
			&m.MarkerID,
			&m.Province,
			&m.Place,
			&m.Latitude,
			&m.Longitude,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan match: %w", err)
		}
		matches = append(matches, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return matches, nil
}

// CountMatches returns the number of stored rows
func (r *Repository) CountMatches(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM notable_matches").Scan(&count); err != nil {
		return 0, fmt.Errorf("repository: failed to count matches: %w", err)
	}
	return count, nil
}

// CountMatchesWithin counts stored matches within radiusMeters of a point, using the geography index
func (r *Repository) CountMatchesWithin(ctx context.Context, lat, lon, radiusMeters float64) (int, error) {
	sql := `
		SELECT COUNT(*)
		FROM notable_matches
		WHERE ST_DWithin(geom, ST_SetSRID(ST_MakePoint($2, $1), 4326)::geography, $3)
	`

	var count int
	if err := r.db.QueryRow(ctx, sql, lat, lon, radiusMeters).Scan(&count); err != nil {
		return 0, fmt.Errorf("repository: failed to execute spatial query: %w", err)
	}
	return count, nil
}
