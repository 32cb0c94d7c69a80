package service

import "errors"

var (
	// ErrMissingSiteName indicates that the site_name secret resolved to
	// the empty string, so no site directory can be derived.
	ErrMissingSiteName = errors.New("site_name secret is missing or empty")

	// ErrMissingBenchName indicates that the bench_name secret resolved to
	// the empty string, so no service hostnames can be derived.
	ErrMissingBenchName = errors.New("bench_name secret is missing or empty")
)
