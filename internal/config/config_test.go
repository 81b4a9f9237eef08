package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"monolith-service/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("DefaultsWithoutFile", func(t *testing.T) {
		cfg, err := config.Load("missing", t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, "missing", cfg.Env)
		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
		assert.Equal(t, "sqlite", cfg.Database.Driver)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, "none", cfg.Events.Driver)
		assert.False(t, cfg.Telemetry.Enabled)
	})

	t.Run("ReadsEnvFile", func(t *testing.T) {
		dir := t.TempDir()
		content := `
server:
  port: "9090"
  cors_origins:
    - "http://localhost:3000"
database:
  driver: postgres
  host: db.internal
  name: records
events:
  driver: nats
  nats:
    subject_prefix: records
`
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.test.yaml"), []byte(content), 0o600))

		cfg, err := config.Load("test", dir)
		require.NoError(t, err)

		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.CORSOrigins)
		assert.Equal(t, "postgres", cfg.Database.Driver)
		assert.Equal(t, "db.internal", cfg.Database.Host)
		assert.Equal(t, "records", cfg.Database.DBName)
		assert.Equal(t, "5432", cfg.Database.Port)
		assert.Equal(t, "nats", cfg.Events.Driver)
		assert.Equal(t, "records", cfg.Events.NATS.SubjectPrefix)
	})

	t.Run("EnvOverridesFile", func(t *testing.T) {
		dir := t.TempDir()
		content := "database:\n  driver: postgres\n  user: from-file\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.override.yaml"), []byte(content), 0o600))

		t.Setenv("DB_USER", "from-env")
		t.Setenv("PORT", "7070")
		t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")

		cfg, err := config.Load("override", dir)
		require.NoError(t, err)

		assert.Equal(t, "from-env", cfg.Database.User)
		assert.Equal(t, "7070", cfg.Server.Port)
		assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Events.Kafka.Brokers)
	})

	t.Run("EnvFromVariable", func(t *testing.T) {
		t.Setenv("ENV", "staging")

		cfg, err := config.Load("", t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, "staging", cfg.Env)
	})

	t.Run("MalformedFile", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.broken.yaml"), []byte("server: [unclosed"), 0o600))

		_, err := config.Load("broken", dir)
		assert.Error(t, err)
	})
}
