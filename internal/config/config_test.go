package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestMustLoad(t *testing.T) {
	t.Run("Reads values from the file", func(t *testing.T) {
		// Given: a config file with every section set
		path := writeConfig(t, `
log-level: debug
http-port: "9191"
socket-port: "8181"
redis:
  host: redis.local
  port: "6380"
game:
  ttl: 30m
`)

		// When: loading it
		conf := MustLoad(path)

		// Then: the values are used
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "9191", conf.HTTPPort)
		assert.Equal(t, "8181", conf.SocketPort)
		assert.Equal(t, "redis.local:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, 30*time.Minute, conf.Game.TTL)
	})

	t.Run("Falls back to defaults", func(t *testing.T) {
		// Given: a config file that only sets the log level
		path := writeConfig(t, "log-level: info\n")

		// When: loading it
		conf := MustLoad(path)

		// Then: the defaults fill the rest
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, "8080", conf.SocketPort)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, time.Hour, conf.Game.TTL)
	})

	t.Run("Panics when the file is missing", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
		})
	})
}

func TestRedis_GetRedisAddr(t *testing.T) {
	assert.Equal(t, "", (&Redis{Port: "6379"}).GetRedisAddr())
	assert.Equal(t, "cache:6379", (&Redis{Host: "cache", Port: "6379"}).GetRedisAddr())
}
