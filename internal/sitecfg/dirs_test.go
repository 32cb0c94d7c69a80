package sitecfg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertIsDir(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

// TestEnsureSiteDirs_CreatesSiteAndLogs verifies that both the site directory
// and its logs subdirectory are created, parents included.
func TestEnsureSiteDirs_CreatesSiteAndLogs(t *testing.T) {
	siteDir := filepath.Join(t.TempDir(), "sites", "acme")

	require.NoError(t, EnsureSiteDirs(siteDir))

	assertIsDir(t, siteDir)
	assertIsDir(t, filepath.Join(siteDir, LogsDir))
}

// TestEnsureSiteDirs_Idempotent verifies that a pre-existing layout is not an
// error and survives a second call.
func TestEnsureSiteDirs_Idempotent(t *testing.T) {
	siteDir := filepath.Join(t.TempDir(), "acme")
	require.NoError(t, EnsureSiteDirs(siteDir))

	marker := filepath.Join(siteDir, LogsDir, "web.log")
	require.NoError(t, os.WriteFile(marker, []byte("log line\n"), 0o644))

	require.NoError(t, EnsureSiteDirs(siteDir))

	data, err := os.ReadFile(marker)
	require.NoError(t, err)
	assert.Equal(t, "log line\n", string(data))
}

// TestEnsureDir_FailsOnFileCollision verifies that a file occupying the
// target path is reported as an error.
func TestEnsureDir_FailsOnFileCollision(t *testing.T) {
	p := filepath.Join(t.TempDir(), "acme")
	require.NoError(t, os.WriteFile(p, []byte("not a directory"), 0o644))

	err := EnsureDir(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error creating directory")
}
