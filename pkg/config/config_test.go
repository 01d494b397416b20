// Copyright (c) Kusari <https://www.kusari.dev/>
// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	v := viper.New()
	require.NoError(t, Init(v, ""))

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "localhost:8000", cfg.Listen)
	assert.Equal(t, "http://localhost:8000", cfg.ExternalURL)
	assert.Equal(t, "client_secret.json", cfg.ClientSecrets)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Empty(t, cfg.RedisURL)
	assert.False(t, cfg.CookieSecure)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("WEBCLIENT_LISTEN", "0.0.0.0:9000")
	t.Setenv("WEBCLIENT_SESSION_TTL", "30m")

	v := viper.New()
	require.NoError(t, Init(v, ""))

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9000", cfg.Listen)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "webclient.yaml")
	content := "external-url: https://profile.example.com\nredis-url: redis://localhost:6379/0\ncookie-secure: true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	v := viper.New()
	require.NoError(t, Init(v, path))

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "https://profile.example.com", cfg.ExternalURL)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.True(t, cfg.CookieSecure)
}

func TestInitMissingConfigFile(t *testing.T) {
	err := Init(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadInvalid(t *testing.T) {
	v := viper.New()
	require.NoError(t, Init(v, ""))
	v.Set("session-ttl", "-1s")

	_, err := Load(v)

	require.ErrorContains(t, err, "session-ttl must be positive")
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("WEBCLIENT_TEST_DOTENV=from-file\n"), 0600))
	t.Setenv("WEBCLIENT_TEST_DOTENV", "")
	require.NoError(t, os.Unsetenv("WEBCLIENT_TEST_DOTENV"))

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "from-file", os.Getenv("WEBCLIENT_TEST_DOTENV"))

	assert.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env")))
}
