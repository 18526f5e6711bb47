package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir()) // без .env файла

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, BackendFile, cfg.StorageBackend)
	assert.Equal(t, 3, cfg.WebhookMaxRetries)
	assert.Equal(t, time.Second, cfg.WebhookBaseDelay)
	assert.Empty(t, cfg.APIKeys)
	assert.False(t, cfg.NeedsRedis())
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("STORAGE_BACKEND", "redis")
	t.Setenv("API_KEYS", "one,two")
	t.Setenv("WEBHOOK_TIMEOUT", "2s")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, cfg.APIKeys)
	assert.Equal(t, 2*time.Second, cfg.WebhookTimeout)
	assert.True(t, cfg.NeedsRedis())
}

func TestLoadConfig_PostgresRequiresURL(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("STORAGE_BACKEND", "postgres")
	t.Setenv("DATABASE_URL", "")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "DATABASE_URL")
}

func TestValidate_UnknownBackend(t *testing.T) {
	cfg := &Config{StorageBackend: "etcd", WebhookMaxRetries: 1}
	assert.ErrorContains(t, cfg.Validate(), "unknown STORAGE_BACKEND")
}
