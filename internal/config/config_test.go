package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
[server]
http_port = 9090

[database]
host = "db"
user = "planner"
password = "from-file"
dbname = "planner"

[auth]
jwt_secret = "s3cret"
token_ttl = 7200

[timeline]
default_days = 14
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, sample))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 14, cfg.Timeline.DefaultDays)
	assert.Equal(t, 31, cfg.Timeline.MaxDays)
	assert.Equal(t, 160.0, cfg.Timeline.BaseCellHeight)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTLDuration())
	assert.Equal(t, "host=db port=5432 user=planner password=from-file dbname=planner sslmode=disable", cfg.Database.DSN())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := Load(writeConfig(t, sample))
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "env-secret", cfg.Auth.JWTSecret)
}

func TestLoadValidation(t *testing.T) {
	_, err := Load(writeConfig(t, "[server]\nhttp_port = 0\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.http_port")
	assert.Contains(t, err.Error(), "auth.jwt_secret")

	_, err = Load(writeConfig(t, "not toml ="))
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestValidateTimeline(t *testing.T) {
	cfg := Default()
	cfg.Database.User, cfg.Database.DBName, cfg.Auth.JWTSecret = "u", "d", "s"
	require.NoError(t, cfg.Validate())

	cfg.Timeline.DefaultDays = 40
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Database.User, cfg.Database.DBName, cfg.Auth.JWTSecret = "u", "d", "s"
	cfg.Timeline.SlotInterval = 0
	assert.Error(t, cfg.Validate())
}
