// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Vyogo Technologies

package config

// validate checks that the final merged [Config] satisfies all invariants
// before it is used. The defaults source makes an empty path unreachable via
// [GetConfig]; the check guards direct builder use.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *Config) validate() error {
	if cfg.Paths.SecretsDir == "" || cfg.Paths.SitesRoot == "" {
		return ErrInvalidPaths
	}

	return nil
}
