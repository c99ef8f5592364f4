// Package config handles configuration management for filegroup.
// It loads the per-group mask lists from the embedded defaults, the user
// TOML file and FILEGROUP_ environment variables, and can watch the user
// file for changes.
package config
