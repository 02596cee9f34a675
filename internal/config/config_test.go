package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigContent = `
[development]
log_level = "trace"
logs_path = ""
log_to_stdout = true
bucketing_time_zone = ""

[production]
log_level = "info"
logs_path = "/var/log/gymprogress/gymprogress.log"
log_to_stdout = false
bucketing_time_zone = "Europe/Berlin"
`

func writeTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(testConfigContent), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeTestConfig(t)

	devCfg, err := Load("development", path)
	require.NoError(t, err)
	assert.Equal(t, "trace", devCfg.LogLevel)
	assert.True(t, devCfg.LogToStdout)

	prodCfg, err := Load("prod", path)
	require.NoError(t, err)
	assert.Equal(t, "info", prodCfg.LogLevel)
	assert.Equal(t, "/var/log/gymprogress/gymprogress.log", prodCfg.LogsPath)
	assert.Equal(t, "Europe/Berlin", prodCfg.BucketingTimeZone)
}

func TestLoad_UnknownEnv(t *testing.T) {
	path := writeTestConfig(t)
	_, err := Load("staging", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown env")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("development", "/nonexistent/config.toml")
	require.Error(t, err)
}

func TestConfig_BucketingLocation(t *testing.T) {
	cfg := &Config{}
	loc, err := cfg.BucketingLocation()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	cfg.BucketingTimeZone = "Europe/Berlin"
	loc, err = cfg.BucketingLocation()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", loc.String())

	cfg.BucketingTimeZone = "Not/AZone"
	_, err = cfg.BucketingLocation()
	require.Error(t, err)
}
