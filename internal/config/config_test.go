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
	t.Run("Reads values from the file", func(t *testing.T) {
		// Given: a config file with every key set
		path := writeConfig(t, "log-level: debug\nhttp-port: \"8081\"\nhistory-order: desc\nshutdown-timeout: 2s\n")

		// When: loading it
		conf, err := Load(path)

		// Then: the values are taken from the file
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "8081", conf.HTTPPort)
		assert.Equal(t, OrderDescending, conf.HistoryOrder)
		assert.Equal(t, 2*time.Second, conf.ShutdownTimeout)
		assert.False(t, conf.IsAscending())
	})

	t.Run("Applies defaults for missing keys", func(t *testing.T) {
		// Given: a config file with only the log level
		path := writeConfig(t, "log-level: info\n")

		// When: loading it
		conf, err := Load(path)

		// Then: defaults fill the rest
		require.NoError(t, err)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, OrderAscending, conf.HistoryOrder)
		assert.Equal(t, 5*time.Second, conf.ShutdownTimeout)
		assert.True(t, conf.IsAscending())
	})

	t.Run("Falls back to environment when the file is missing", func(t *testing.T) {
		// Given: no config file and a port in the environment
		t.Setenv("HTTP_PORT", "7070")

		// When: loading a missing path
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: the environment value is used
		require.NoError(t, err)
		assert.Equal(t, "7070", conf.HTTPPort)
	})

	t.Run("Rejects an unknown history order", func(t *testing.T) {
		path := writeConfig(t, "history-order: sideways\n")

		_, err := Load(path)

		require.ErrorIs(t, err, ErrInvalidHistoryOrder)
	})
}

func TestMustLoad_Panics(t *testing.T) {
	path := writeConfig(t, "history-order: sideways\n")

	assert.Panics(t, func() { MustLoad(path) })
}
