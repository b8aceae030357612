package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/vaultnote/internal/adapter"
	"github.com/MKhiriev/vaultnote/internal/client"
	"github.com/MKhiriev/vaultnote/internal/config"
	"github.com/MKhiriev/vaultnote/internal/logger"
	"github.com/MKhiriev/vaultnote/internal/service"
	"github.com/MKhiriev/vaultnote/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("vaultnote-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server adapter")
	}

	db, err := store.NewConnectSQLite(context.Background(), cfg.Storage.Ledger, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error opening local ledger")
	}
	defer db.Close()

	ledger := store.NewNoteLedger(db, log)
	services := service.NewClientServices(ledger, serverAdapter, cfg.App.ShareBaseURL, log)

	app := client.NewApp(services.NoteService, log)
	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
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
