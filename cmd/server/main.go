// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/anime-saver/internal/adapter"
	"github.com/MKhiriev/anime-saver/internal/config"
	"github.com/MKhiriev/anime-saver/internal/handler"
	"github.com/MKhiriev/anime-saver/internal/logger"
	"github.com/MKhiriev/anime-saver/internal/server"
	"github.com/MKhiriev/anime-saver/internal/service"
	"github.com/MKhiriev/anime-saver/internal/store"
	"github.com/MKhiriev/anime-saver/internal/workers"
	"github.com/MKhiriev/anime-saver/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("anime-saver-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	logger.SetLevel(cfg.LogLevel)

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	catalog, err := adapter.NewMALCatalogAdapter(cfg.Catalog, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating catalogue adapter")
	}

	services, err := service.NewServices(storages, catalog, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	jobs := workers.NewWorkers(services.ShareService, cfg.Workers, log)

	srv, err := server.NewServer(handlers, jobs, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo() {
	fmt.Println(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
}
