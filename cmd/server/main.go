package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/knockout-login/internal/adapter"
	"github.com/MKhiriev/knockout-login/internal/config"
	handler "github.com/MKhiriev/knockout-login/internal/handler/http"
	"github.com/MKhiriev/knockout-login/internal/logger"
	"github.com/MKhiriev/knockout-login/internal/server"
	"github.com/MKhiriev/knockout-login/internal/service"
	"github.com/MKhiriev/knockout-login/models"
	"github.com/joho/godotenv"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("knockout-login")

	// optional .env file: populates the process environment before the
	// snapshot is taken; a missing file is not an error
	_ = godotenv.Load()

	args, err := config.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error parsing flags")
	}

	cfg, err := config.Load(config.Sources{Args: args, Env: config.FromEnviron(os.Environ())})
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Int("port", cfg.Port).Stringer("base_url", cfg.BaseURL).Msg("received configs")

	knockout := adapter.NewKnockoutClient(adapter.KnockoutClientConfig{APIKey: cfg.APIKey})
	services := service.NewServices(
		knockout,
		service.AuthConfig{SignKey: cfg.APIKey},
		models.NewAppBuildInfo(buildVersion, buildDate, buildCommit),
		log,
	)
	handlers := handler.NewHandler(services, cfg.BaseURL, log)

	srv, err := server.NewServer(handlers.Init(), cfg, log)
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
