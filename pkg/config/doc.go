// Package config handles configuration management for tpick.
// It loads the pattern and action definitions from a TOML or YAML file,
// layers embedded defaults, environment variables and command-line
// overrides on top, and exposes the result as a read-only Config.
package config
