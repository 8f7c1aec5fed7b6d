package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hatchr/hatchr/internal/setup/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".hatchr"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hatchr", "common.toml"), []byte(content), 0o600))
	t.Chdir(dir)
}

func TestLoadConfig(t *testing.T) {
	writeConfig(t, `
version = 1

[debug]
log_level = "debug"
max_logs_to_keep = 3

[postgresql]
host = "db.local"
port = 5432
db_name = "hatchr"

[points]
received_upvote = 7
`)

	cfg, configPath, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ".hatchr", configPath)
	assert.Equal(t, "debug", cfg.Debug.LogLevel)
	assert.Equal(t, "db.local", cfg.PostgreSQL.Host)
	assert.Equal(t, 7, cfg.Points.ReceivedUpvote)
	assert.Zero(t, cfg.Points.ProjectCreated) // unset overrides stay zero
}

func TestLoadConfigVersionMissing(t *testing.T) {
	writeConfig(t, `
[debug]
log_level = "info"
`)

	_, _, err := config.LoadConfig()
	require.ErrorIs(t, err, config.ErrConfigVersionMissing)
}

func TestLoadConfigVersionMismatch(t *testing.T) {
	writeConfig(t, `version = 99`)

	_, _, err := config.LoadConfig()
	require.ErrorIs(t, err, config.ErrConfigVersionMismatch)
}
