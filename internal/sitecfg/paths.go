package sitecfg

import "path/filepath"

// Well-known file names inside a bench sites tree.
const (
	// SiteConfigFile is the per-site configuration file name.
	SiteConfigFile = "site_config.json"

	// CommonConfigFile is the bench-level configuration file name, shared
	// by all sites.
	CommonConfigFile = "common_site_config.json"

	// AppsFile lists the apps available on the bench, one per line.
	AppsFile = "apps.txt"

	// LogsDir is the per-site log directory name.
	LogsDir = "logs"
)

// SiteDir returns the directory of the named site under the sites root.
func SiteDir(sitesRoot, siteName string) string {
	return filepath.Join(sitesRoot, siteName)
}

// SiteConfigPath returns the path of the named site's site_config.json.
func SiteConfigPath(sitesRoot, siteName string) string {
	return filepath.Join(sitesRoot, siteName, SiteConfigFile)
}

// CommonConfigPath returns the path of the bench-level
// common_site_config.json.
func CommonConfigPath(sitesRoot string) string {
	return filepath.Join(sitesRoot, CommonConfigFile)
}

// AppsFilePath returns the path of the bench-level apps.txt.
func AppsFilePath(sitesRoot string) string {
	return filepath.Join(sitesRoot, AppsFile)
}
