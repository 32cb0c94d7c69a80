// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Vyogo Technologies

package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vyogotech/siteconfig/internal/config"
	"github.com/vyogotech/siteconfig/internal/logger"
	"github.com/vyogotech/siteconfig/internal/secrets"
	"github.com/vyogotech/siteconfig/internal/sitecfg"
	"github.com/vyogotech/siteconfig/models"
)

// BenchInit materializes the bench-level configuration: it overlays the
// Redis endpoints and the socketio port into common_site_config.json and
// writes apps.txt from a listing of the bench apps directory.
type BenchInit struct {
	secrets *secrets.Store
	paths   config.Paths
	log     *logger.Logger
	out     io.Writer
}

// NewBenchInit constructs a *BenchInit. out receives the plain status lines;
// pass os.Stdout in production.
func NewBenchInit(store *secrets.Store, paths config.Paths, log *logger.Logger, out io.Writer) *BenchInit {
	return &BenchInit{
		secrets: store,
		paths:   paths,
		log:     log,
		out:     out,
	}
}

// Run executes one initialization. A missing apps directory only skips
// apps.txt; every other failure aborts the run.
func (b *BenchInit) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	benchName := b.secrets.Read("bench_name")
	if benchName == "" {
		b.log.Warn().Msg("bench_name secret is missing, cannot derive service hostnames")
		return ErrMissingBenchName
	}

	if err := sitecfg.EnsureDir(b.paths.SitesRoot); err != nil {
		return err
	}

	configPath := sitecfg.CommonConfigPath(b.paths.SitesRoot)

	doc, err := sitecfg.Load(configPath)
	if err != nil {
		return err
	}

	sitecfg.Merge(doc, sitecfg.Document{
		"redis_cache":   models.RedisCacheURL(benchName),
		"redis_queue":   models.RedisQueueURL(benchName),
		"socketio_port": models.SocketIOPort,
	})

	if err := sitecfg.Write(configPath, doc); err != nil {
		return err
	}

	b.log.Info().Str("bench", benchName).Msg("common site config updated")

	fmt.Fprintf(b.out, "Updated common_site_config.json for bench: %s\n", benchName)
	fmt.Fprintf(b.out, "Redis cache: %s\n", models.RedisCacheHost(benchName))
	fmt.Fprintf(b.out, "Redis queue: %s\n", models.RedisQueueHost(benchName))

	return b.writeAppsFile()
}

// writeAppsFile lists the bench apps directory into apps.txt, one entry per
// line. No apps directory means nothing to list, which is not an error.
func (b *BenchInit) writeAppsFile() error {
	entries, err := os.ReadDir(b.paths.AppsDir)
	if err != nil {
		if os.IsNotExist(err) {
			b.log.Debug().Str("apps_dir", b.paths.AppsDir).Msg("no apps directory, skipping apps.txt")
			return nil
		}
		return fmt.Errorf("error listing apps directory %s: %w", b.paths.AppsDir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}

	appsPath := sitecfg.AppsFilePath(b.paths.SitesRoot)
	content := strings.Join(names, "\n")
	if len(names) > 0 {
		content += "\n"
	}

	if err := os.WriteFile(appsPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("error writing %s: %w", appsPath, err)
	}

	fmt.Fprintf(b.out, "Created apps.txt with %d app(s)\n", len(names))

	return nil
}
