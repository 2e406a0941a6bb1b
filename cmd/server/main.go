package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bloglist/internal/config"
	"github.com/MKhiriev/go-bloglist/internal/handler"
	"github.com/MKhiriev/go-bloglist/internal/logger"
	"github.com/MKhiriev/go-bloglist/internal/server"
	"github.com/MKhiriev/go-bloglist/internal/service"
	"github.com/MKhiriev/go-bloglist/internal/store"
	"github.com/MKhiriev/go-bloglist/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(orNA(buildVersion), orNA(buildDate), orNA(buildCommit))
	printBuildInfo(buildInfo)

	log := logger.NewLogger("go-bloglist-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping default")
	}

	if cfg.App.Version == config.DefaultVersion && buildVersion != "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("token_issuer", cfg.App.TokenIssuer).
		Dur("token_duration", cfg.App.TokenDuration).
		Dur("request_timeout", cfg.Server.RequestTimeout).
		Str("static_dir", cfg.Server.StaticDir).
		Msg("received configs")

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
