// Package config handles configuration management for skinmanager.
// Values are layered: embedded defaults, then the user's config.toml, then
// SKINMANAGER_ environment variables.
package config
