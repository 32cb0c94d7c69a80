package config

import "errors"

// Validation errors returned by [Config.validate] when the merged
// configuration is unusable.
var (
	// ErrInvalidPaths indicates that one of the filesystem locations
	// resolved to an empty string after merging all sources.
	ErrInvalidPaths = errors.New("invalid paths configuration")
)
