package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfigDefaults(t *testing.T) {
	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, []string{"http://localhost:5173", "http://127.0.0.1:5173"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "consecutive", cfg.Analysis.HorizontalStrategy)
	assert.True(t, cfg.Analysis.SkipAggregateRows)
	assert.Equal(t, "rules.yaml", cfg.Classification.RulesFile)
}

func TestInitializeConfigEnvOverride(t *testing.T) {
	t.Setenv("FINANALYZER_LOG_LEVEL", "debug")
	t.Setenv("FINANALYZER_SERVER_ADDR", ":9090")
	t.Setenv("FINANALYZER_ANALYSIS_HORIZONTAL_STRATEGY", "fixed_base")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "fixed_base", cfg.Analysis.HorizontalStrategy)
}

func TestInitializeConfigRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "bad log level", key: "FINANALYZER_LOG_LEVEL", value: "loud"},
		{name: "bad log format", key: "FINANALYZER_LOG_FORMAT", value: "xml"},
		{name: "bad strategy", key: "FINANALYZER_ANALYSIS_HORIZONTAL_STRATEGY", value: "sliding"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := InitializeConfig()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid configuration")
		})
	}
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	var cfg Config
	cfg.Log.Level = "debug"
	cfg.Log.Format = "json"

	logger := ConfigureLoggingFromConfig(&cfg)

	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}

func TestConfigureLoggingFromConfigFallsBackToInfo(t *testing.T) {
	var cfg Config
	cfg.Log.Level = "loud"
	cfg.Log.Format = "text"

	logger := ConfigureLoggingFromConfig(&cfg)

	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
}
