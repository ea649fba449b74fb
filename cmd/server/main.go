package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-ask-box/internal/adapter"
	"github.com/MKhiriev/go-ask-box/internal/config"
	"github.com/MKhiriev/go-ask-box/internal/handler"
	"github.com/MKhiriev/go-ask-box/internal/logger"
	"github.com/MKhiriev/go-ask-box/internal/server"
	"github.com/MKhiriev/go-ask-box/internal/service"
	"github.com/MKhiriev/go-ask-box/internal/store"
	"github.com/MKhiriev/go-ask-box/internal/workers"
	"github.com/MKhiriev/go-ask-box/models"
	"github.com/joho/godotenv"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-ask-box-server")

	// a missing .env is fine, the environment may be set by other means
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg(".env file not loaded")
	}

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	mailer, err := adapter.NewMailer(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating mailer")
	}

	mailQueue := workers.NewMailQueue(mailer, 0, log.GetChildLogger())
	workersCtx, stopWorkers := context.WithCancel(ctx)
	defer stopWorkers()
	go workers.NewWorkers(mailQueue).Run(workersCtx)

	services, err := service.NewServices(storages, mailQueue, *cfg, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	if err = services.AdminService.Bootstrap(ctx, cfg.Bootstrap); err != nil {
		log.Fatal().Err(err).Msg("error creating bootstrap admin")
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

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
