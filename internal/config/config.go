package config

import "time"

// Config holds runtime settings for the bookkeeper CLI.
//
// Fields:
//   - DirectoryAddr: base URL of the remote user directory / catalog source.
//   - StorageBackend: which persistence adapter to use ("sqlite" or "redis").
//   - SQLiteDSN: path or DSN of the local sqlite state database.
//   - RedisAddr / RedisPassword: redis connection settings (redis backend only).
//   - RequestTimeout: per-request timeout for directory/catalog calls.
type Config struct {
	DirectoryAddr  string
	StorageBackend string
	SQLiteDSN      string
	RedisAddr      string
	RedisPassword  string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DirectoryAddr = "https://jsonplaceholder.typicode.com"
	c.StorageBackend = "sqlite"
	c.SQLiteDSN = "bookkeeper.db"
	c.RedisAddr = "127.0.0.1:6379"
	c.RedisPassword = ""
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
