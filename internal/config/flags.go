package config

import (
	"flag"
	"os"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-secrets-dir directory of mounted secret files
//	-sites-root bench sites directory
//	-apps-dir bench apps directory
//	-e/-env-file dotenv file path
func ParseFlags() *Config {
	return parseFlags(flag.NewFlagSet(os.Args[0], flag.ExitOnError), os.Args[1:])
}

func parseFlags(fs *flag.FlagSet, args []string) *Config {
	var secretsDir string
	var sitesRoot string
	var appsDir string
	var envFilePath string

	fs.StringVar(&secretsDir, "secrets-dir", "", "Directory of mounted secret files")
	fs.StringVar(&sitesRoot, "sites-root", "", "Bench sites directory")
	fs.StringVar(&appsDir, "apps-dir", "", "Bench apps directory")
	fs.StringVar(&envFilePath, "e", "", "Dotenv file path")
	fs.StringVar(&envFilePath, "env-file", "", "Dotenv file path (alias)")

	// ExitOnError flag sets terminate the process on a bad flag, so the
	// returned error only matters for ContinueOnError sets used in tests.
	_ = fs.Parse(args)

	return &Config{
		Paths: Paths{
			SecretsDir: secretsDir,
			SitesRoot:  sitesRoot,
			AppsDir:    appsDir,
		},
		EnvFilePath: envFilePath,
	}
}
