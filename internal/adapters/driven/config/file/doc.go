// Package file provides a TOML file-based implementation of the config
// store driven port, persisted at ~/.serbisyo/config.toml.
package file
