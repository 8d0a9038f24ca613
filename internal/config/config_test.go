package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("CONFIG_PATH", path)
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"DATABASE_URL", "JWT_SECRET", "SERVER_ENV", "SERVER_PORT", "FRONTEND_URL"} {
		t.Setenv(key, "")
	}
}

func TestLoad_FromFile(t *testing.T) {
	clearEnv(t)
	writeConfig(t, `
server:
  port: 8080
database:
  url: postgres://localhost/test
jwt:
  secret: file-secret
auth:
  login_domain: example.org
`)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "file-secret", cfg.JWT.Secret)
	assert.Equal(t, "example.org", cfg.Auth.LoginDomain)

	// Untouched values keep their defaults.
	assert.Equal(t, 8, cfg.JWT.TTLHours)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, 60, cfg.Auth.ResetTokenTTLMinutes)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	writeConfig(t, `
database:
  url: postgres://localhost/file
jwt:
  secret: file-secret
`)
	t.Setenv("DATABASE_URL", "postgres://localhost/env")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/env", cfg.Database.DSN)
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
	assert.Equal(t, 9090, cfg.Server.Port)
}

func TestLoad_FailsFastOnMissingRequiredValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database url")

	t.Setenv("DATABASE_URL", "postgres://localhost/test")
	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt secret")

	t.Setenv("JWT_SECRET", "s3cret")
	_, err = Load()
	assert.NoError(t, err)
}

func TestValidate_RejectsWeakSettings(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()
	cfg.Database.DSN = "postgres://localhost/test"
	cfg.JWT.Secret = "s3cret"

	cfg.JWT.TTLHours = 0
	assert.Error(t, cfg.Validate())
	cfg.JWT.TTLHours = 8

	cfg.Auth.PasswordMinLength = 4
	assert.Error(t, cfg.Validate())
	cfg.Auth.PasswordMinLength = 8

	assert.NoError(t, cfg.Validate())
}
