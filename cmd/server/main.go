package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-staff-keeper/internal/adapter"
	"github.com/MKhiriev/go-staff-keeper/internal/config"
	"github.com/MKhiriev/go-staff-keeper/internal/handler"
	"github.com/MKhiriev/go-staff-keeper/internal/logger"
	"github.com/MKhiriev/go-staff-keeper/internal/server"
	"github.com/MKhiriev/go-staff-keeper/internal/service"
	"github.com/MKhiriev/go-staff-keeper/internal/store"
	"github.com/MKhiriev/go-staff-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := newBuildInfo()
	printBuildInfo(buildInfo)

	log := logger.NewLogger("go-staff-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	leveled, err := log.WithLevel(cfg.App.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	log = leveled

	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("db_driver", cfg.Storage.DB.Driver).
		Str("asset_host", cfg.Adapter.AssetHost).
		Str("version", cfg.App.Version).
		Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectDB(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	assetHost, err := adapter.NewAssetHost(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating asset host")
	}

	services, err := service.NewServices(store.NewStorages(db, log), assetHost, *cfg, log)
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

	srv.RunServer()
}

func newBuildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
