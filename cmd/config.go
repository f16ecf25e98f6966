package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
	"reprowiz.dev/pkg/reprowiz/internal/controller"
	"reprowiz.dev/pkg/reprowiz/internal/domain"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "reprowiz"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	defaultSettingsName = "ReproProjectSettings.yaml"

	projectFlagName  = "project"
	settingsFlagName = "settings"
	verboseFlagName  = "verbose"
	logFileFlagName  = "log-file"

	projectRootKey         = "project.root"
	settingsFileKey        = "settings.file"
	statsOutputKey         = "stats.output"
	scanBuildTargetKey     = "scan.build_target"
	scanReleaseIntervalKey = "scan.release_interval"
	buildOverwriteKey      = "build.overwrite"
	buildCommonPatternsKey = "build.common_patterns"
	closureFixedPointKey   = "closure.fixed_point"
	uiModeKey              = "ui.mode"
	editorPathKey          = "editor.path"

	defaultProjectRoot = "."
	defaultBuildTarget = "standalone"
	defaultOverwrite   = string(domain.OverwriteAsk)
	defaultFixedPoint  = false

	envPrefix = "REPROWIZ"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".reprowiz.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	initConfig()
}

// initConfig points viper at reprowiz.yaml and the REPROWIZ_ environment,
// sets the defaults and reads the config file when there is one.
func initConfig() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		// A missing or unreadable file leaves the defaults in place.
		return
	}
}

func setDefaults() {
	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(projectRootKey, defaultProjectRoot)
	viper.SetDefault(settingsFileKey, "")
	viper.SetDefault(statsOutputKey, "")
	viper.SetDefault(scanBuildTargetKey, defaultBuildTarget)
	viper.SetDefault(scanReleaseIntervalKey, domain.DefaultReleaseInterval)
	viper.SetDefault(buildOverwriteKey, defaultOverwrite)
	viper.SetDefault(buildCommonPatternsKey, domain.DefaultCommonPatterns)
	viper.SetDefault(closureFixedPointKey, defaultFixedPoint)
	viper.SetDefault(uiModeKey, controller.UIModeAuto)
	viper.SetDefault(editorPathKey, "")

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)
}

// settingsPath is the configured settings file, or the default file inside
// the project root.
func settingsPath() string {
	if path := strings.TrimSpace(viper.GetString(settingsFileKey)); path != "" {
		return path
	}

	return filepath.Join(viper.GetString(projectRootKey), defaultSettingsName)
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
// By default it logs at Info; if verbose is true it logs at Debug.
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
