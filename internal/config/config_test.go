package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "data", cfg.DataDir)
	assert.Empty(t, cfg.OutlineFile)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("FARS_DATA_DIR", "/srv/fars/extracts")
	t.Setenv("FARS_OUTLINE_FILE", "/srv/fars/states.geojson")
	t.Setenv("FARS_OUTPUT_DIR", "/tmp/fars-out")
	t.Setenv("FARS_LOG_LEVEL", "debug")
	t.Setenv("FARS_LOG_FORMAT", "text")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/srv/fars/extracts", cfg.DataDir)
	assert.Equal(t, "/srv/fars/states.geojson", cfg.OutlineFile)
	assert.Equal(t, "/tmp/fars-out", cfg.OutputDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_EmptyDataDir(t *testing.T) {
	t.Setenv("FARS_DATA_DIR", "")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FARS_DATA_DIR")
}

func TestLoad_EmptyOutputDir(t *testing.T) {
	t.Setenv("FARS_OUTPUT_DIR", "")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FARS_OUTPUT_DIR")
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Setenv("FARS_LOG_LEVEL", "loud")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FARS_LOG_LEVEL")
}

func TestLoad_InvalidLogFormat(t *testing.T) {
	t.Setenv("FARS_LOG_FORMAT", "yaml")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FARS_LOG_FORMAT")
}
