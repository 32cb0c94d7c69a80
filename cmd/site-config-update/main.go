package main

import (
	"context"
	"os"

	"github.com/vyogotech/siteconfig/internal/config"
	"github.com/vyogotech/siteconfig/internal/logger"
	"github.com/vyogotech/siteconfig/internal/secrets"
	"github.com/vyogotech/siteconfig/internal/service"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("site-config-update")
	logBuildInfo(log)

	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	updater := service.NewSiteUpdater(
		secrets.NewStore(cfg.Paths.SecretsDir),
		cfg.Paths,
		log,
		os.Stdout,
	)

	if err := updater.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("error updating site config")
	}
}

func logBuildInfo(log *logger.Logger) {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	log.Debug().
		Str("build_version", buildVersion).
		Str("build_date", buildDate).
		Str("build_commit", buildCommit).
		Msg("build info")
}
