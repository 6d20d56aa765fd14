package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/bookkeeper/internal/flagx"
	"github.com/dmitrijs2005/bookkeeper/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify the request timeout
// either as a string like "10s" or as integer nanoseconds. After
// parsing, values are copied into the runtime Config.
type JsonConfig struct {
	DirectoryAddr  string         `json:"directory_addr"`
	StorageBackend string         `json:"storage_backend"`
	SQLiteDSN      string         `json:"sqlite_dsn"`
	RedisAddr      string         `json:"redis_addr"`
	RedisPassword  string         `json:"redis_password"`
	RequestTimeout timex.Duration `json:"request_timeout"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c / -config flags (see
// flagx.JsonConfigFlags); when absent, nothing is loaded. Only fields
// present in the file override the current values. Read or unmarshal
// errors panic; config is resolved once at startup and a broken file
// should be fixed, not ignored.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DirectoryAddr != "" {
		cfg.DirectoryAddr = jc.DirectoryAddr
	}
	if jc.StorageBackend != "" {
		cfg.StorageBackend = jc.StorageBackend
	}
	if jc.SQLiteDSN != "" {
		cfg.SQLiteDSN = jc.SQLiteDSN
	}
	if jc.RedisAddr != "" {
		cfg.RedisAddr = jc.RedisAddr
	}
	if jc.RedisPassword != "" {
		cfg.RedisPassword = jc.RedisPassword
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
}
