package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, "instance/app.db", cfg.Database.Path)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":9090")
	t.Setenv("DATABASE_PATH", "/tmp/test.db")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, "/tmp/test.db", cfg.Database.Path)
}
