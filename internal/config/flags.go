package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/bookkeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   base URL of the remote directory (default from Config)
//	-b string   storage backend: sqlite or redis
//	-f string   sqlite database path/DSN
//	-r string   redis address (host:port)
//	-t int      request timeout in seconds
//
// Note: the function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other
// components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-b", "-f", "-r", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DirectoryAddr, "d", cfg.DirectoryAddr, "base URL of the remote directory")
	fs.StringVar(&cfg.StorageBackend, "b", cfg.StorageBackend, "storage backend (sqlite or redis)")
	fs.StringVar(&cfg.SQLiteDSN, "f", cfg.SQLiteDSN, "sqlite database path")
	fs.StringVar(&cfg.RedisAddr, "r", cfg.RedisAddr, "redis address (host:port)")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
