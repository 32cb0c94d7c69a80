// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Vyogo Technologies

package models

// SiteSecrets holds the per-site values mounted as individual files by the
// deployment orchestrator. Every field may be empty: an absent secret file
// resolves to the empty string.
type SiteSecrets struct {
	// SiteName identifies the tenant; it is also the name of the site
	// directory under the sites root.
	SiteName string

	// Domain is the resolved public domain of the site, written to the
	// host_name config key.
	Domain string

	// BenchName is the deployment grouping identifier used to namespace
	// the Redis cache and queue service hostnames.
	BenchName string

	// AdminPassword and AppsToInstall are provisioned alongside the other
	// secrets for the site initialization job. The config updater carries
	// them but does not write them into site_config.json.
	AdminPassword string
	AppsToInstall string

	// Database credentials, written to the db_* config keys.
	DBHost     string
	DBName     string
	DBUser     string
	DBPassword string

	// DBPort is provisioned by the orchestrator but is not part of the
	// generated configuration.
	DBPort string

	// DBProvider selects the database backend (e.g. "mariadb", "postgres")
	// and is written to the db_type config key.
	DBProvider string
}

// RedisCacheURL returns the cache connection URL for the site's bench.
func (s SiteSecrets) RedisCacheURL() string {
	return RedisCacheURL(s.BenchName)
}

// RedisQueueURL returns the queue connection URL for the site's bench.
func (s SiteSecrets) RedisQueueURL() string {
	return RedisQueueURL(s.BenchName)
}
