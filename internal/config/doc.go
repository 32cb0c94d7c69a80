// Package config provides configuration loading, merging, and validation
// facilities for the siteconfig tools.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources override later ones for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. Dotenv file
//  4. Built-in defaults
//
// The main entry point is [GetConfig].
package config
