// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Vyogo Technologies

package config

// Default paths used when no override is supplied. They mirror the layout of
// the bench container image and the secret volume mounted by the
// orchestrator.
const (
	// DefaultSecretsDir is where the orchestrator mounts the per-site
	// secret files, one value per file.
	DefaultSecretsDir = "/tmp/site-secrets"

	// DefaultSitesRoot is the bench sites directory holding one
	// subdirectory per site.
	DefaultSitesRoot = "/home/frappe/frappe-bench/sites"

	// DefaultAppsDir is the bench apps checkout, listed to produce
	// apps.txt during bench initialization.
	DefaultAppsDir = "/home/frappe/frappe-bench/apps"
)

// Config is the top-level runtime configuration for the siteconfig tools. It
// is populated by merging values from environment variables, command-line
// flags, and an optional dotenv file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type Config struct {
	// Paths holds the filesystem locations the tools operate on.
	Paths Paths `envPrefix:"SITECONFIG_"`

	// EnvFilePath is the optional path to a dotenv file. When non-empty,
	// the file is loaded into the process environment and merged below the
	// values already present in the real environment and on the command
	// line. Populated via the SITECONFIG_ENV_FILE environment variable or
	// the -e / -env-file flag.
	EnvFilePath string `env:"SITECONFIG_ENV_FILE"`
}

// Paths holds the filesystem locations the tools read from and write to.
type Paths struct {
	// SecretsDir is the directory of mounted secret files.
	// Env: SITECONFIG_SECRETS_DIR
	SecretsDir string `env:"SECRETS_DIR"`

	// SitesRoot is the directory containing per-site subdirectories and
	// the bench-level common_site_config.json.
	// Env: SITECONFIG_SITES_ROOT
	SitesRoot string `env:"SITES_ROOT"`

	// AppsDir is the bench apps directory whose entries are listed into
	// apps.txt. It does not have to exist.
	// Env: SITECONFIG_APPS_DIR
	AppsDir string `env:"APPS_DIR"`
}

// GetConfig loads, merges, and validates the tool configuration from all
// available sources in the following priority order (earlier sources win for
// non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. Dotenv file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *Config or an error if any source fails to load
// or the final config fails validation.
func GetConfig() (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withDotenv().
		withDefaults().
		build()
}
