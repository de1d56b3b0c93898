package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: "9090"
database:
  dbname: "campusbridge_test"
jwt:
  secret: "test-secret"
  access_token_expiration: "30m"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	require.Equal(t, "9090", cfg.Server.Port)
	require.Equal(t, "campusbridge_test", cfg.Database.DBName)
	require.Equal(t, "test-secret", cfg.JWT.Secret)
	require.Equal(t, "30m", cfg.JWT.AccessTokenExpiration)

	// Unset fields keep their defaults.
	require.Equal(t, "localhost", cfg.Database.Host)
	require.Equal(t, "campusbridge.app", cfg.JWT.Issuer)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
jwt:
  secret: "file-secret"
database:
  port: "5432"
`)

	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("DB_PORT", "6432")
	t.Setenv("DB_MAX_OPEN_CONNS", "50")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	require.Equal(t, "env-secret", cfg.JWT.Secret)
	require.Equal(t, "6432", cfg.Database.Port)
	require.Equal(t, 50, cfg.Database.MaxOpenConns)
}

func TestLoadConfigRequiresJWTSecret(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: "8080"
`)

	_, err := LoadConfig(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "JWT secret")
}

func TestLoadConfigRejectsBadDuration(t *testing.T) {
	path := writeConfigFile(t, `
jwt:
  secret: "s"
  access_token_expiration: "not-a-duration"
`)

	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestPostgresConnectionString(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)
	cfg.Database.User = "app"
	cfg.Database.Password = "pw"
	cfg.Database.DBName = "campusbridge"

	require.Equal(t,
		"postgres://app:pw@localhost:5432/campusbridge?sslmode=disable",
		cfg.GetPostgresConnectionString())
}
