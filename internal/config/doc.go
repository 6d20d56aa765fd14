// Package config loads runtime configuration for the bookkeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   base URL of the remote user directory / catalog source
//	-b string   storage backend: sqlite or redis
//	-f string   sqlite database path
//	-r string   redis address (host:port)
//	-t int      request timeout (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "10s" or integer nanoseconds:
//
//	{
//	  "directory_addr": "https://jsonplaceholder.typicode.com",
//	  "storage_backend": "sqlite",
//	  "sqlite_dsn": "bookkeeper.db",
//	  "request_timeout": "10s"
//	}
//
// Note: this package does not read environment variables; use the JSON
// file or flags to configure values.
package config
