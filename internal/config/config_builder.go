package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*Config
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*Config, 0, 4),
	}
}

func (b *configBuilder) build() (*Config, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(Config)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &Config{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flags := ParseFlags()

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withDotenv() *configBuilder {
	var envFilePath string

	for _, cfg := range b.configs {
		if cfg.EnvFilePath != "" {
			envFilePath = cfg.EnvFilePath
		}
	}

	dotenvCfg, err := parseDotenv(envFilePath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	if dotenvCfg != nil {
		b.configs = append(b.configs, dotenvCfg)
	}

	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, &Config{
		Paths: Paths{
			SecretsDir: DefaultSecretsDir,
			SitesRoot:  DefaultSitesRoot,
			AppsDir:    DefaultAppsDir,
		},
	})

	return b
}
