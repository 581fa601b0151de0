package config

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(prev)
	})
}

func TestInitializeConfigDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.Equal(t, "America/New_York", cfg.Extraction.Timezone)
	assert.Empty(t, cfg.Extraction.ProviderFile)
}

func TestInitializeConfigEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())
	t.Setenv("PAYPLAN_LOG_LEVEL", "debug")
	t.Setenv("PAYPLAN_EXTRACTION_TIMEZONE", "America/Chicago")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "America/Chicago", cfg.Extraction.Timezone)
}

func TestInitializeConfigInvalidLevel(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())
	t.Setenv("PAYPLAN_LOG_LEVEL", "verbose")

	_, err := InitializeConfig()
	assert.Error(t, err)
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.Log.Level = "info"
		cfg.Log.Format = "text"
		cfg.CSV.Delimiter = ","
		return cfg
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, validateConfig(valid()))
	})

	t.Run("bad level", func(t *testing.T) {
		cfg := valid()
		cfg.Log.Level = "loud"
		assert.Error(t, validateConfig(cfg))
	})

	t.Run("bad format", func(t *testing.T) {
		cfg := valid()
		cfg.Log.Format = "xml"
		assert.Error(t, validateConfig(cfg))
	})

	t.Run("multi-char delimiter", func(t *testing.T) {
		cfg := valid()
		cfg.CSV.Delimiter = ",,"
		assert.Error(t, validateConfig(cfg))
	})
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	cfg := &Config{}
	cfg.Log.Level = "debug"
	cfg.Log.Format = "json"

	logger := ConfigureLoggingFromConfig(cfg)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)

	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	logger = ConfigureLoggingFromConfig(cfg)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
}
