package app

import (
	"context"
	"fmt"

	"provincemap/internal/config"
	"provincemap/internal/geodata"
	"provincemap/internal/models"
	"provincemap/internal/service"
)

// MatchStore reads a previously exported match table.
type MatchStore interface {
	ListMatches(ctx context.Context) ([]models.NotableMatch, error)
}

// BuildAtlas loads both datasets and produces the match table, either computed
// from the datasets or read from store when the config asks for it.
func BuildAtlas(ctx context.Context, cfg config.Config, loader *geodata.Loader, catalog geodata.Catalog, store MatchStore) (*models.Atlas, error) {
	if cfg.MatchSource == config.MatchSourcePostgres {
		if store == nil {
			return nil, fmt.Errorf("app: match source %s requires a store", cfg.MatchSource)
		}
		ds, err := loader.LoadBoundaries(ctx)
		if err != nil {
			return nil, err
		}
		matches, err := store.ListMatches(ctx)
		if err != nil {
			return nil, fmt.Errorf("app: failed to load stored matches: %w", err)
		}
		return &models.Atlas{Provinces: ds.Provinces, Matches: matches}, nil
	}

	ds, err := loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	matches := service.MatchNotablePlaces(catalog, ds.Provinces, ds.Points, ds.CRS)

	return &models.Atlas{Provinces: ds.Provinces, Matches: matches}, nil
}
