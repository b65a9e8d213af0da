// Package config loads and saves ~/.config/smartcd/config.toml.
package config
