package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads the yml file", func(t *testing.T) {
		// Given: a config file selecting redis storage
		path := writeConfig(t, `
log-level: debug
results:
  storage: redis
  redis:
    host: cache
    port: "6380"
`)

		// When: the config is loaded
		conf, err := Load(path)

		// Then: every value comes from the file
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, StorageRedis, conf.Results.Storage)
		assert.Equal(t, "cache:6380", conf.Results.Redis.GetRedisAddr())
	})

	t.Run("Missing file falls back to environment and defaults", func(t *testing.T) {
		// Given: no config file and a redis port in the environment
		t.Setenv("REDIS_PORT", "7000")
		path := filepath.Join(t.TempDir(), "missing.yml")

		// When: the config is loaded
		conf, err := Load(path)

		// Then: defaults fill everything else
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, StorageMemory, conf.Results.Storage)
		assert.Equal(t, "localhost:7000", conf.Results.Redis.GetRedisAddr())
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		// Given: a config file with memory storage and RESULTS_STORAGE set to redis
		t.Setenv("RESULTS_STORAGE", StorageRedis)
		path := writeConfig(t, "results:\n  storage: memory\n")

		// When: the config is loaded
		conf, err := Load(path)

		// Then: the environment wins
		require.NoError(t, err)
		assert.Equal(t, StorageRedis, conf.Results.Storage)
	})
}

func TestMustLoad(t *testing.T) {
	// Given: a malformed config file
	path := writeConfig(t, "log-level: [unclosed\n")

	// When / Then: MustLoad panics
	assert.Panics(t, func() {
		MustLoad(path)
	})
}
