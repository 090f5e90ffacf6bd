package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
	"semreg.dev/pkg/semreg/internal/domain"
	m "semreg.dev/pkg/semreg/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "semreg"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	outputFlagName      = "output"
	filterFlagName      = "filter"
	verboseFlagName     = "verbose"
	specsFlagName       = "specs"
	tasksFlagName       = "tasks"
	runParallelFlagName = "parallel"
	runTimeoutFlagName  = "timeout"
	fastPathFlagName    = "fast-path"

	specsDirKey          = "specs.dir"
	tasksDirKey          = "tasks.dir"
	filterConfigKey      = "scenarios.filter"
	runParallelConfigKey = "run.parallel"
	runTimeoutKey        = "run.timeout"
	runFastPathKey       = "run.fast_path"

	builderToolKey    = "tools.builder"
	simplifierToolKey = "tools.simplifier"
	checkerToolKey    = "tools.checker"

	benchRunnerKey     = "bench.runner"
	benchDatasetKey    = "bench.dataset"
	benchWorkDirKey    = "bench.workdir"
	benchExperimentKey = "bench.experiment"
	benchBaselineKey   = "bench.baseline"
	benchCandidateKey  = "bench.candidate"

	defaultSpecsDir    = "tests/regression/test_specs"
	defaultTasksDir    = "kernel"
	defaultReportsDir  = ".semreg-reports"
	defaultRunParallel = 1
	defaultRunFastPath = false

	envPrefix = "SEMREG"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".semreg.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var (
	defaultBuilderTool    = []string{"diffkemp", "build-module"}
	defaultSimplifierTool = []string{"simpll"}
	defaultCheckerTool    = []string{"diffkemp", "compare-functions"}
	defaultBenchRunner    = []string{"eqbench_tool/run"}
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(outputFlagName, defaultReportsDir)
	viper.SetDefault(specsDirKey, defaultSpecsDir)
	viper.SetDefault(tasksDirKey, defaultTasksDir)
	viper.SetDefault(filterConfigKey, []string{})
	viper.SetDefault(runParallelConfigKey, defaultRunParallel)
	viper.SetDefault(runTimeoutKey, int64(domain.DefaultCompareTimeout.Seconds()))
	viper.SetDefault(runFastPathKey, defaultRunFastPath)

	viper.SetDefault(builderToolKey, defaultBuilderTool)
	viper.SetDefault(simplifierToolKey, defaultSimplifierTool)
	viper.SetDefault(checkerToolKey, defaultCheckerTool)

	viper.SetDefault(benchRunnerKey, defaultBenchRunner)
	viper.SetDefault(benchDatasetKey, "EqBench")
	viper.SetDefault(benchWorkDirKey, ".")
	viper.SetDefault(benchExperimentKey, domain.DefaultExperiment)
	viper.SetDefault(benchBaselineKey+".name", "upstream")
	viper.SetDefault(benchBaselineKey+".binary", "upstream/bin/diffkemp")
	viper.SetDefault(benchBaselineKey+".build", []string{"nix", "build", "diffkemp-upstream", "-o", "upstream"})
	viper.SetDefault(benchBaselineKey+".args", []string{})
	viper.SetDefault(benchCandidateKey+".name", "current")
	viper.SetDefault(benchCandidateKey+".binary", "current/bin/diffkemp")
	viper.SetDefault(benchCandidateKey+".build", []string{"nix", "build", "diffkemp-current", "-o", "current"})
	viper.SetDefault(benchCandidateKey+".args", []string{"--add-cmp-opt=--use-smt"})

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		slog.Warn("Failed to read config file", "file", configFileName, "error", err)
	}
}

// runTimeout returns the per-comparison timeout; non-positive values fall
// back to the default.
func runTimeout() time.Duration {
	seconds := viper.GetInt64(runTimeoutKey)
	if seconds <= 0 {
		return domain.DefaultCompareTimeout
	}

	return time.Duration(seconds) * time.Second
}

// loadVariant reads a benchmark variant from the config subtree at key.
func loadVariant(key string) (m.Variant, error) {
	var variant m.Variant
	if err := viper.UnmarshalKey(key, &variant); err != nil {
		return m.Variant{}, fmt.Errorf("read %s: %w", key, err)
	}

	if strings.TrimSpace(variant.Name) == "" {
		return m.Variant{}, fmt.Errorf("%s.name must be set", key)
	}

	if strings.TrimSpace(variant.Binary) == "" {
		return m.Variant{}, fmt.Errorf("%s.binary must be set", key)
	}

	return variant, nil
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at the configured level; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
