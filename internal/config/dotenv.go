package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

// parseDotenv loads a dotenv file into the process environment and returns a
// *Config parsed from the environment afterwards, so values that were only
// present in the file become visible to the merge.
//
// godotenv never overrides variables that are already set, so the returned
// config can only contribute values the real environment did not supply.
//
// When envFilePath is empty the conventional "./.env" is tried and a missing
// file is not an error (there is simply nothing to contribute). An explicitly
// requested file must exist.
func parseDotenv(envFilePath string) (*Config, error) {
	if envFilePath == "" {
		if err := godotenv.Load(); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, nil
			}
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	} else {
		if err := godotenv.Load(envFilePath); err != nil {
			return nil, fmt.Errorf("error loading env file %s: %w", envFilePath, err)
		}
	}

	dotenvCfg := &Config{}
	if err := parseEnv(dotenvCfg); err != nil {
		return nil, err
	}

	return dotenvCfg, nil
}
