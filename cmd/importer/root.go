package main

import (
	"context"
	"fmt"
	"io"
	"sort"

	"provincemap/internal/config"
	"provincemap/internal/geodata"
	"provincemap/internal/models"
	"provincemap/internal/repository"
	"provincemap/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

type options struct {
	ConfigDir string
	DryRun    bool
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "importer",
		Short: "Match notable places and export them to PostGIS",
		Long: "Loads the province boundaries and points of interest, runs the notable place matcher " +
			"and replaces the notable_matches table with the result.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&opts.ConfigDir, "config", "configs", "directory containing app.env")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "print the match summary without writing to the database")

	return cmd
}

func run(ctx context.Context, opts *options, out io.Writer) error {
	cfg, err := config.LoadConfig(opts.ConfigDir)
	if err != nil {
		return err
	}
	if !opts.DryRun && cfg.DBSource == "" {
		return fmt.Errorf("DB_SOURCE is required unless --dry-run is set")
	}

	ds, err := geodata.NewLoader(cfg.GeoSources(), geodata.DefaultCatalog).Load(ctx)
	if err != nil {
		return err
	}
	matches := service.MatchNotablePlaces(geodata.DefaultCatalog, ds.Provinces, ds.Points, ds.CRS)
	printSummary(out, matches)

	if opts.DryRun {
		return nil
	}

	pool, err := pgxpool.New(ctx, cfg.DBSource)
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer pool.Close()

	repo := repository.NewRepository(pool)
	if err := repo.EnsureSchema(ctx); err != nil {
		return err
	}
	n, err := repo.ReplaceMatches(ctx, matches)
	if err != nil {
		return err
	}
	if err := verifyImport(ctx, repo, matches); err != nil {
		return err
	}

	fmt.Fprintf(out, "Successfully exported %d matches\n", n)
	return nil
}

type verifier interface {
	CountMatches(ctx context.Context) (int, error)
	CountMatchesWithin(ctx context.Context, lat, lon, radiusMeters float64) (int, error)
}

// verifyImport checks the row count and that the first match's generated geometry lines up with its coordinates.
func verifyImport(ctx context.Context, v verifier, matches []models.NotableMatch) error {
	count, err := v.CountMatches(ctx)
	if err != nil {
		return err
	}
	if count != len(matches) {
		return fmt.Errorf("record count mismatch: expected %d, got %d", len(matches), count)
	}
	if len(matches) == 0 {
		return nil
	}

	first := matches[0]
	near, err := v.CountMatchesWithin(ctx, first.Latitude, first.Longitude, 1)
	if err != nil {
		return err
	}
	if near == 0 {
		return fmt.Errorf("stored geometry for %s does not match its coordinates", first.MarkerID)
	}
	return nil
}

func printSummary(out io.Writer, matches []models.NotableMatch) {
	perProvince := map[string]int{}
	for _, m := range matches {
		perProvince[m.Province]++
	}
	names := make([]string, 0, len(perProvince))
	for name := range perProvince {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintf(out, "Matched %d notable places\n", len(matches))
	for _, name := range names {
		fmt.Fprintf(out, "  %-28s %d\n", name, perProvince[name])
	}
}
