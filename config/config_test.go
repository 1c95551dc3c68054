package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("RALLY_EXPORT_PATH", "")
	t.Setenv("USER_CONFIG_PATH", "")
	t.Setenv("PIVOTAL_CSV", "")
	t.Setenv("VERBOSE", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.ExportPath)
	assert.Equal(t, "user_config.yml", cfg.UserConfigPath)
	assert.Equal(t, "pivotal_stories.csv", cfg.PivotalCSV)
	assert.False(t, cfg.Verbose)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("RALLY_EXPORT_PATH", "/tmp/rally")
	t.Setenv("USER_CONFIG_PATH", "/tmp/users.yml")
	t.Setenv("PIVOTAL_CSV", "out.csv")
	t.Setenv("VERBOSE", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/rally", cfg.ExportPath)
	assert.Equal(t, "/tmp/users.yml", cfg.UserConfigPath)
	assert.Equal(t, "out.csv", cfg.PivotalCSV)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfigInvalidBoolFallsBack(t *testing.T) {
	t.Setenv("VERBOSE", "sometimes")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.False(t, cfg.Verbose)
}
