package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "")
	t.Setenv("DB_DRIVER", "")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "test-secret", cfg.Auth.SecretKey)
	assert.Equal(t, ":8000", cfg.Server.Address)
	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Equal(t, 30*time.Minute, cfg.Auth.TokenTTL())
	assert.Equal(t, 30, cfg.Server.LoginRatePerMinute)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("SECRET_KEY", "from-env")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "5")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", "/tmp/guests.db")
	t.Setenv("SERVER_ADDRESS", ":9999")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 5*time.Minute, cfg.Auth.TokenTTL())
	assert.Equal(t, "sqlite", cfg.DB.Driver)
	assert.Equal(t, "/tmp/guests.db", cfg.DB.Path)
	assert.Equal(t, ":9999", cfg.Server.Address)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadConfigFile(t *testing.T) {
	t.Setenv("SECRET_KEY", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("SERVER_ADDRESS", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
server:
  address: ":8081"
db:
  driver: sqlite
  path: guests.db
auth:
  secret_key: file-secret
  access_token_expire_minutes: 60
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":8081", cfg.Server.Address)
	assert.Equal(t, "sqlite", cfg.DB.Driver)
	assert.Equal(t, "file-secret", cfg.Auth.SecretKey)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL())
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("SECRET_KEY", "")
	t.Setenv("AUTH_SECRET_KEY", "")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SECRET_KEY")
}

func TestValidateRejectsUnknownDriver(t *testing.T) {
	cfg := Config{
		Auth: AuthConfig{SecretKey: "s"},
		DB:   DBConfig{Driver: "mongodb"},
	}
	assert.Error(t, cfg.Validate())
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Setenv("SECRET_KEY", "s")

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
