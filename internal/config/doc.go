// Package config loads editor configuration from a TOML file and
// watches it for live reload.
//
// Configuration is optional: a missing file yields the built-in
// defaults, and invalid values are normalized rather than rejected so
// a bad config never blocks startup.
package config
