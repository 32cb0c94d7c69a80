// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Vyogo Technologies

package service

import (
	"context"
	"fmt"
	"io"

	"github.com/vyogotech/siteconfig/internal/config"
	"github.com/vyogotech/siteconfig/internal/logger"
	"github.com/vyogotech/siteconfig/internal/secrets"
	"github.com/vyogotech/siteconfig/internal/sitecfg"
	"github.com/vyogotech/siteconfig/models"
)

// SiteUpdater materializes a site's site_config.json from the mounted
// secrets: it loads the existing document (or starts empty), overlays the
// computed fields, ensures the site directory layout exists, and rewrites the
// file.
//
// The whole run is a single linear sequence; it either completes or returns
// the first error for the caller to treat as fatal.
type SiteUpdater struct {
	secrets *secrets.Store
	paths   config.Paths
	log     *logger.Logger
	out     io.Writer
}

// NewSiteUpdater constructs a *SiteUpdater. out receives the plain status
// lines the orchestrator scrapes; pass os.Stdout in production.
func NewSiteUpdater(store *secrets.Store, paths config.Paths, log *logger.Logger, out io.Writer) *SiteUpdater {
	return &SiteUpdater{
		secrets: store,
		paths:   paths,
		log:     log,
		out:     out,
	}
}

// Run executes one update. Missing secrets resolve to empty values and
// missing config files to an empty document; a present but malformed
// document, or any filesystem failure, aborts the run.
func (u *SiteUpdater) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s := u.secrets.LoadSiteSecrets()
	if s.SiteName == "" {
		u.log.Warn().Msg("site_name secret is missing, refusing to materialize a site at the sites root")
		return ErrMissingSiteName
	}

	siteDir := sitecfg.SiteDir(u.paths.SitesRoot, s.SiteName)
	configPath := sitecfg.SiteConfigPath(u.paths.SitesRoot, s.SiteName)

	u.log.Debug().
		Str("site", s.SiteName).
		Str("domain", s.Domain).
		Str("bench", s.BenchName).
		Str("config_path", configPath).
		Msg("loaded site secrets")

	doc, err := sitecfg.Load(configPath)
	if err != nil {
		return err
	}

	sitecfg.Merge(doc, u.overlay(s))

	if err := sitecfg.EnsureSiteDirs(siteDir); err != nil {
		return err
	}

	if err := sitecfg.Write(configPath, doc); err != nil {
		return err
	}

	u.log.Info().Str("site", s.SiteName).Str("domain", s.Domain).Msg("site config updated")

	fmt.Fprintf(u.out, "Updated site_config.json for domain: %s\n", s.Domain)
	fmt.Fprintf(u.out, "Redis cache: %s\n", models.RedisCacheHost(s.BenchName))
	fmt.Fprintf(u.out, "Redis queue: %s\n", models.RedisQueueHost(s.BenchName))

	return nil
}

// overlay derives the config fields this tool owns. db_port is provisioned
// alongside the other secrets but is not part of the document.
func (u *SiteUpdater) overlay(s models.SiteSecrets) sitecfg.Document {
	return sitecfg.Document{
		"host_name":   s.Domain,
		"redis_cache": s.RedisCacheURL(),
		"redis_queue": s.RedisQueueURL(),
		"db_name":     s.DBName,
		"db_user":     s.DBUser,
		"db_password": s.DBPassword,
		"db_host":     s.DBHost,
		"db_type":     s.DBProvider,
	}
}
