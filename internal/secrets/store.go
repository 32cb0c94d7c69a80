// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Vyogo Technologies

// Package secrets reads per-site secret values mounted as individual files,
// one value per file, the way the orchestrator projects a Secret volume into
// the update job.
package secrets

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/vyogotech/siteconfig/models"
)

// Store resolves named secrets against a single directory of mounted files.
type Store struct {
	dir string
}

// NewStore constructs a *Store rooted at dir. The directory does not have to
// exist; every lookup then resolves to its default.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Read returns the whitespace-trimmed content of the secret file name, or the
// empty string if the file is missing or unreadable.
func (s *Store) Read(name string) string {
	return s.ReadDefault(name, "")
}

// ReadDefault returns the whitespace-trimmed content of the secret file name.
// A missing or unreadable file is an expected condition and silently resolves
// to def.
func (s *Store) ReadDefault(name, def string) string {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return def
	}

	return strings.TrimSpace(string(data))
}

// LoadSiteSecrets resolves the full set of secrets the orchestrator
// provisions for a site update. Absent files yield empty fields.
func (s *Store) LoadSiteSecrets() models.SiteSecrets {
	return models.SiteSecrets{
		SiteName:      s.Read("site_name"),
		Domain:        s.Read("domain"),
		BenchName:     s.Read("bench_name"),
		AdminPassword: s.Read("admin_password"),
		AppsToInstall: s.Read("apps_to_install"),
		DBHost:        s.Read("db_host"),
		DBPort:        s.Read("db_port"),
		DBName:        s.Read("db_name"),
		DBUser:        s.Read("db_user"),
		DBPassword:    s.Read("db_password"),
		DBProvider:    s.Read("db_provider"),
	}
}
