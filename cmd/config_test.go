package cmd

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "semreg", configBaseName)
	assert.Equal(t, "semreg.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "output", outputFlagName)
	assert.Equal(t, "filter", filterFlagName)
	assert.Equal(t, "parallel", runParallelFlagName)
	assert.Equal(t, "run.parallel", runParallelConfigKey)
	assert.Equal(t, "run.timeout", runTimeoutKey)
	assert.Equal(t, "scenarios.filter", filterConfigKey)
	assert.Equal(t, ".semreg-reports", defaultReportsDir)
	assert.Equal(t, 1, defaultRunParallel)
	assert.Equal(t, "run.fast_path", runFastPathKey)
	assert.False(t, defaultRunFastPath)
	assert.Equal(t, "SEMREG", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestRunTimeout(t *testing.T) {
	original := viper.Get(runTimeoutKey)
	t.Cleanup(func() { viper.Set(runTimeoutKey, original) })

	viper.Set(runTimeoutKey, 45)
	assert.Equal(t, 45*time.Second, runTimeout())

	viper.Set(runTimeoutKey, 0)
	assert.Equal(t, 120*time.Second, runTimeout())
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelWarn},
		{"debug", slog.LevelDebug},
		{" INFO ", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"loud", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelWarn))
		})
	}
}

func TestConfigureLogger(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	configureLogger(filepath.Join(t.TempDir(), "semreg.log"), true)

	assert.NotNil(t, globalLogger)
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
}
