package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		name        string
		args        []string
		expectPanic bool
		expected    *Config
	}{
		{
			name: "all flags",
			args: []string{"cmd", "-d", "http://dir.example", "-b", "redis", "-f", "state.db", "-r", "127.0.0.1:7000", "-t", "30"},
			expected: &Config{
				DirectoryAddr:  "http://dir.example",
				StorageBackend: "redis",
				SQLiteDSN:      "state.db",
				RedisAddr:      "127.0.0.1:7000",
				RequestTimeout: 30 * time.Second,
			},
		},
		{
			name:        "incorrect timeout",
			args:        []string{"cmd", "-t", "abc"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config) })
				return
			}
			require.NotPanics(t, func() { parseFlags(config) })
			assert.Equal(t, tt.expected, config)
		})
	}
}
