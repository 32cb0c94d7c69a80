// Package service wires the secret store and the sitecfg document helpers
// into the run-to-completion operations the siteconfig binaries expose: a
// per-site config update and a bench-level initialization.
package service
