package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	err := os.WriteFile(path, []byte(`
http:
  port: 9090
database:
  host: db.internal
  port: 5433
  user: taco
  password: secret
  database: tacos
rabbitmq:
  host: mq.internal
  user: rabbit
session:
  backend: memory
  ttl: 10m
`), 0o600)
	require.NoError(t, err)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, "tacos", cfg.Database.Database)
	assert.Equal(t, "mq.internal", cfg.RabbitMQ.Host)
	assert.Equal(t, 5672, cfg.RabbitMQ.Port, "unset keys keep defaults")
	assert.Equal(t, "/", cfg.RabbitMQ.VHost)
	assert.Equal(t, "memory", cfg.Session.Backend)
	assert.Equal(t, 10*time.Minute, cfg.Session.TTL)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "env-host")
	t.Setenv("DB_PORT", "6000")
	t.Setenv("SESSION_BACKEND", "memory")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "env-host", cfg.Database.Host)
	assert.Equal(t, 6000, cfg.Database.Port)
	assert.Equal(t, "memory", cfg.Session.Backend)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Database.Host = ""
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Session.Backend = "cookie"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Session.Backend = "redis"
	cfg.Redis.Addr = ""
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Session.TTL = 0
	assert.Error(t, cfg.Validate())
	assert.Zero(t, cfg.Session.TTL, "Validate leaves the config untouched")

	assert.NoError(t, Default().Validate())
}

func TestLoadConfigRejectsMalformedEnv(t *testing.T) {
	t.Setenv("DB_PORT", "abc")
	t.Setenv("SESSION_TTL", "soon")

	_, err := LoadConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `DB_PORT: invalid integer "abc"`)
	assert.Contains(t, err.Error(), `SESSION_TTL: invalid duration "soon"`)
}

func TestLoadConfigSessionTTLFromEnv(t *testing.T) {
	t.Setenv("SESSION_BACKEND", "memory")
	t.Setenv("SESSION_TTL", "45m")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 45*time.Minute, cfg.Session.TTL)
}
