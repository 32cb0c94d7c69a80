package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempEnvFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_EmptyBuilderFailsValidation verifies that building with no
// configs yields no usable paths and fails validation.
func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	_, err := newConfigBuilder().build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPaths)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&Config{Paths: Paths{SecretsDir: "/run/secrets"}},
		&Config{Paths: Paths{SitesRoot: "/srv/sites"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "/run/secrets", cfg.Paths.SecretsDir)
	assert.Equal(t, "/srv/sites", cfg.Paths.SitesRoot)
}

// TestBuild_EarlierSourceWins verifies that a field set by an earlier source
// is not overwritten by a later one.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&Config{Paths: Paths{SecretsDir: "/from/env", SitesRoot: "/srv/sites"}},
		&Config{Paths: Paths{SecretsDir: "/from/flags"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.Paths.SecretsDir)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("SITECONFIG_SECRETS_DIR", "/env/secrets")
	t.Setenv("SITECONFIG_SITES_ROOT", "/env/sites")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "/env/secrets", b.configs[0].Paths.SecretsDir)
	assert.Equal(t, "/env/sites", b.configs[0].Paths.SitesRoot)
}

// ── withDotenv ────────────────────────────────────────────────────────────────

// TestWithDotenv_LoadsRequestedFile verifies that values from an explicitly
// requested dotenv file become part of the merge.
func TestWithDotenv_LoadsRequestedFile(t *testing.T) {
	// godotenv.Load mutates the process environment; clean up after.
	t.Setenv("SITECONFIG_APPS_DIR", "")
	require.NoError(t, os.Unsetenv("SITECONFIG_APPS_DIR"))

	p := writeTempEnvFile(t, "SITECONFIG_APPS_DIR=/dotenv/apps\n")

	b := newConfigBuilder()
	b.configs = append(b.configs, &Config{EnvFilePath: p})
	b.withDotenv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "/dotenv/apps", b.configs[1].Paths.AppsDir)
}

// TestWithDotenv_DoesNotOverrideEnv verifies that a variable already present
// in the environment keeps its value after the dotenv file is loaded.
func TestWithDotenv_DoesNotOverrideEnv(t *testing.T) {
	t.Setenv("SITECONFIG_SECRETS_DIR", "/real/secrets")

	p := writeTempEnvFile(t, "SITECONFIG_SECRETS_DIR=/dotenv/secrets\n")

	b := newConfigBuilder()
	b.withEnv()
	b.configs = append(b.configs, &Config{EnvFilePath: p})
	b.withDotenv()

	cfg, err := b.withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, "/real/secrets", cfg.Paths.SecretsDir)
}

// TestWithDotenv_MissingExplicitFileFails verifies that a dotenv path that
// was explicitly configured must exist.
func TestWithDotenv_MissingExplicitFileFails(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &Config{EnvFilePath: "definitely-does-not-exist.env"})
	b.withDotenv()

	require.Error(t, b.err)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

// TestWithDefaults_FillsFixedPaths verifies that the defaults source carries
// the well-known deployment paths.
func TestWithDefaults_FillsFixedPaths(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultSecretsDir, cfg.Paths.SecretsDir)
	assert.Equal(t, DefaultSitesRoot, cfg.Paths.SitesRoot)
	assert.Equal(t, DefaultAppsDir, cfg.Paths.AppsDir)
}

// TestWithDefaults_DoNotShadowEarlierSources verifies that defaults only fill
// fields no earlier source provided.
func TestWithDefaults_DoNotShadowEarlierSources(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &Config{Paths: Paths{SitesRoot: "/custom/sites"}})

	cfg, err := b.withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, "/custom/sites", cfg.Paths.SitesRoot)
	assert.Equal(t, DefaultSecretsDir, cfg.Paths.SecretsDir)
}
