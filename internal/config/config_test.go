package config

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "8053", cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.False(t, cfg.Gate.AllowExternalNetwork)
	assert.Equal(t, runtime.GOOS == "windows", cfg.Gate.Windows)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.RateLimit.Enabled)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("EMBER_PORT", "9001")
	t.Setenv("EMBER_USER_DATA_DIR", "/home/bob/.config/Ember")
	t.Setenv("EMBER_INSTALL_DIR", "/opt/Ember")
	t.Setenv("EMBER_ALLOW_EXTERNAL_NETWORK", "true")
	t.Setenv("EMBER_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9001", cfg.Server.Port)
	assert.Equal(t, "/home/bob/.config/Ember", cfg.Gate.UserDataDir)
	assert.Equal(t, "/opt/Ember", cfg.Gate.InstallDir)
	assert.True(t, cfg.Gate.AllowExternalNetwork)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadPlatformDefaultsToHost(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, runtime.GOOS == "windows", cfg.Gate.Windows)
}

func TestLoadPlatformOverride(t *testing.T) {
	t.Setenv("EMBER_PLATFORM_WINDOWS", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Gate.Windows)
}
