package main

import (
	"context"
	"os"

	"provincemap/internal/app"
	"provincemap/internal/config"
	"provincemap/internal/geodata"
	"provincemap/internal/metrics"
	"provincemap/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

//	@title			Province Map API
//	@version		1.0
//	@description	Canadian provinces choropleth with notable places markers.
//	@BasePath		/
func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	setupLogger(config.LogLevel)

	ctx := context.Background()

	var store app.MatchStore
	if config.DBSource != "" {
		conn, err := pgxpool.New(ctx, config.DBSource)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot connect to db")
		}
		defer conn.Close()
		store = repository.NewRepository(conn)
	}

	loader := geodata.NewLoader(config.GeoSources(), geodata.DefaultCatalog)
	atlas, err := app.BuildAtlas(ctx, config, loader, geodata.DefaultCatalog, store)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load map data")
	}
	metrics.NotableMatches.Set(float64(len(atlas.Matches)))
	log.Info().
		Int("provinces", len(atlas.Provinces)).
		Int("matches", len(atlas.Matches)).
		Str("source", config.MatchSource).
		Msg("atlas ready")

	gin.SetMode(config.GinMode)
	r, err := app.NewRouter(atlas)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot build router")
	}

	log.Info().Str("addr", config.ServerAddress()).Msg("serving")
	if err := r.Run(config.ServerAddress()); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func setupLogger(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
