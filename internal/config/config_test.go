package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuriak/SpeechDialogueFactory/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "./data", cfg.DataDir)
	assert.Equal(t, "dialogues.db", cfg.DatasetFile)
	assert.True(t, cfg.PrettyJSON)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SDF_LOG_LEVEL", "debug")
	t.Setenv("SDF_DATA_DIR", "/var/lib/sdf")
	t.Setenv("SDF_PRETTY_JSON", "false")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.AppEnv)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/var/lib/sdf", cfg.DataDir)
	assert.False(t, cfg.PrettyJSON)
}
