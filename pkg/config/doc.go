// Package config holds configuration for the syspropc binaries. Values come
// from an optional YAML file, with SYSPROPC_* environment variables taking
// precedence, and defaults below both.
package config
