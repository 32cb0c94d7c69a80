package sitecfg

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDir creates dir and any missing parents. Idempotent.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("error creating directory %s: %w", dir, err)
	}

	return nil
}

// EnsureSiteDirs creates the site directory and its logs subdirectory,
// including any missing parents. Idempotent.
func EnsureSiteDirs(siteDir string) error {
	if err := EnsureDir(siteDir); err != nil {
		return err
	}

	return EnsureDir(filepath.Join(siteDir, LogsDir))
}
