package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Defaults are applied", func(t *testing.T) {
		// Given: a config with only the secret
		path := writeConfig(t, "jwt-secret-key: secret\n")

		// When: it is loaded
		conf, err := Load(path)

		// Then: every other value has its default
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, StorageRedis, conf.Storage.Driver)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, 10*time.Second, conf.Session.PingInterval)
		assert.Equal(t, 20*time.Second, conf.Session.PingTimeout)
		assert.Equal(t, 2*time.Second, conf.Session.FinishGrace)
		assert.Equal(t, 2*time.Second, conf.Lobby.FeedInterval)
	})

	t.Run("Values from file", func(t *testing.T) {
		path := writeConfig(t, `
jwt-secret-key: secret
socket-port: "7000"
storage:
  driver: sqlite
  sqlite-path: /tmp/results.db
session:
  ping-interval: 1s
  ping-timeout: 3s
`)

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "7000", conf.SocketPort)
		assert.Equal(t, StorageSQLite, conf.Storage.Driver)
		assert.Equal(t, "/tmp/results.db", conf.Storage.SQLitePath)
		assert.Equal(t, 3*time.Second, conf.Session.PingTimeout)
	})

	t.Run("Unknown storage driver", func(t *testing.T) {
		path := writeConfig(t, "jwt-secret-key: secret\nstorage:\n  driver: mongo\n")

		_, err := Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "mongo")
	})

	t.Run("Timeout shorter than interval", func(t *testing.T) {
		path := writeConfig(t, "jwt-secret-key: secret\nsession:\n  ping-interval: 10s\n  ping-timeout: 5s\n")

		_, err := Load(path)

		require.Error(t, err)
	})

	t.Run("MustLoad panics on a missing file", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
		})
	})
}
