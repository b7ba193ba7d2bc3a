package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sharedConfig "github.com/reqtrack/reqtrack/internal/shared/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_FileAndDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 8088
database:
  driver: postgres
  host: db
  port: 5432
`)

	cfg, err := Load("", path)
	require.NoError(t, err)

	assert.Equal(t, 8088, cfg.Server.Port)
	assert.Equal(t, sharedConfig.DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, 30, cfg.Auth.JWT.ExpDays)
	assert.Equal(t, sharedConfig.SequenceBackendDB, cfg.Sequence.Backend)
	assert.Equal(t, "uploads", cfg.Storage.UploadDir)
	assert.Same(t, cfg, Get())
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 8088\n")
	t.Setenv("REQTRACK_SERVER_PORT", "9099")
	t.Setenv("REQTRACK_AUTH_JWT_SECRET", "from-env")

	cfg, err := Load("", path)
	require.NoError(t, err)

	assert.Equal(t, 9099, cfg.Server.Port)
	assert.Equal(t, "from-env", cfg.Auth.JWT.Secret)
}

func TestLoad_ModeOverride(t *testing.T) {
	path := writeConfig(t, "server:\n  mode: debug\n")

	cfg, err := Load("release", path)
	require.NoError(t, err)
	assert.Equal(t, "release", cfg.Server.Mode)
}

func TestDatabaseConfig_GetDSN(t *testing.T) {
	mysql := sharedConfig.DatabaseConfig{Driver: "mysql", Username: "u", Password: "p", Host: "h", Port: 3306, Database: "d"}
	assert.Contains(t, mysql.GetDSN(), "u:p@tcp(h:3306)/d?")

	pg := sharedConfig.DatabaseConfig{Driver: "postgres", Username: "u", Password: "p", Host: "h", Port: 5432, Database: "d"}
	assert.Contains(t, pg.GetDSN(), "sslmode=disable")

	lite := sharedConfig.DatabaseConfig{Driver: "sqlite", Path: "x.db"}
	assert.Equal(t, "x.db", lite.GetDSN())
}
