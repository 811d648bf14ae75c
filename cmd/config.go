/**************************************************************************************************
** Configuration and environment management for the clipkit CLI.
** Handles logger configuration, environment variable loading, and global configuration state.
**************************************************************************************************/

package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"github.com/majorfi/clipkit/pkg/utils"
	"github.com/sirupsen/logrus"
)

// Global configuration variables
var outputFormat string
var hashWorkers int
var hashCacheSize int
var noProgress bool
var noExpand bool
var decimalPoint string

/**************************************************************************************************
** LoadEnvConfig is the outcome of loading the configuration: the configured logger and the
** first configuration error, if any.
**************************************************************************************************/
type LoadEnvConfig struct {
	Logger *logrus.Logger
	Error  error
}

/**************************************************************************************************
** Configures the logger based on environment variables. Sets up the log level and format
** according to LOG_LEVEL and LOG_FORMAT environment variables.
**
** @param output - Destination of the log lines, os.Stderr when nil
** @return *logrus.Logger - Configured logger instance
**************************************************************************************************/
func configureLoggerWithOutput(output io.Writer) *logrus.Logger {
	logger := logrus.New()
	if output == nil {
		output = os.Stderr
	}
	logger.SetOutput(output)

	// Set log level from environment variable
	logger.SetLevel(logrus.InfoLevel)
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		if parsedLevel, err := logrus.ParseLevel(level); err == nil {
			logger.SetLevel(parsedLevel)
		} else {
			logger.Warnf("Invalid LOG_LEVEL '%s', using default 'info'", level)
		}
	}

	// Set log format from environment variable
	if format := os.Getenv("LOG_FORMAT"); format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
		})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: true,
			FullTimestamp:    false,
			TimestampFormat:  time.RFC3339,
		})
	}

	return logger
}

func configureLogger() *logrus.Logger {
	return configureLoggerWithOutput(nil)
}

/**************************************************************************************************
** Loads environment variables and command-line flags, with flags taking precedence over env
** variables, then validates the result.
**
** @return LoadEnvConfig - Logger and the configuration error, if any
**************************************************************************************************/
func loadEnvConfig() LoadEnvConfig {
	_ = godotenv.Load()
	logger := configureLogger()

	if outputFormat == "" {
		outputFormat = os.Getenv("OUTPUT_FORMAT")
	}
	if outputFormat == "" {
		outputFormat = utils.DefaultOutputFormat
	}
	if hashWorkers == 0 {
		if val := os.Getenv("HASH_WORKERS"); val != "" {
			intVal, err := strconv.Atoi(val)
			if err != nil {
				return LoadEnvConfig{Logger: logger, Error: fmt.Errorf("invalid HASH_WORKERS '%s': %w", val, err)}
			}
			hashWorkers = intVal
		}
	}
	if hashWorkers == 0 {
		hashWorkers = runtime.NumCPU()
	}
	if hashCacheSize == 0 {
		if val := os.Getenv("HASH_CACHE_SIZE"); val != "" {
			intVal, err := strconv.Atoi(val)
			if err != nil {
				return LoadEnvConfig{Logger: logger, Error: fmt.Errorf("invalid HASH_CACHE_SIZE '%s': %w", val, err)}
			}
			hashCacheSize = intVal
		}
	}
	if hashCacheSize == 0 {
		hashCacheSize = utils.DefaultHashCacheSize
	}
	if !noProgress {
		noProgress = os.Getenv("NO_PROGRESS") == "true"
	}
	if decimalPoint == "" {
		decimalPoint = os.Getenv("DECIMAL_POINT")
	}
	if decimalPoint == "" {
		decimalPoint = utils.DefaultDecimalPoint
	}

	return LoadEnvConfig{Logger: logger, Error: validateConfig()}
}

/**************************************************************************************************
** Validates the global configuration once flags and env variables have been merged.
**
** @return error - First invalid setting found
**************************************************************************************************/
func validateConfig() error {
	if !utils.Contains(utils.OutputFormats, outputFormat) {
		return fmt.Errorf("invalid output format '%s', expected one of %v", outputFormat, utils.OutputFormats)
	}
	if hashWorkers < 1 {
		return fmt.Errorf("hash workers must be at least 1, got %d", hashWorkers)
	}
	if hashCacheSize < 1 {
		return fmt.Errorf("hash cache size must be at least 1, got %d", hashCacheSize)
	}
	if utf8.RuneCountInString(decimalPoint) != 1 {
		return fmt.Errorf("decimal point must be a single character, got '%s'", decimalPoint)
	}
	return nil
}

/**************************************************************************************************
** Loads the configuration for a command, aborting on configuration errors.
**
** @return *logrus.Logger - Configured logger instance
**************************************************************************************************/
func loadEnv() *logrus.Logger {
	config := loadEnvConfig()
	if config.Error != nil {
		config.Logger.Fatal(config.Error)
	}
	logStartupSummary(config.Logger)
	return config.Logger
}

/**************************************************************************************************
** Logs the effective configuration at debug level, as a single line in text mode or as
** structured fields in JSON mode.
**
** @param logger - Logger to write to
**************************************************************************************************/
func logStartupSummary(logger *logrus.Logger) {
	if _, isJSON := logger.Formatter.(*logrus.JSONFormatter); isJSON {
		logger.WithFields(logrus.Fields{
			"outputFormat":  outputFormat,
			"hashWorkers":   hashWorkers,
			"hashCacheSize": hashCacheSize,
			"noProgress":    noProgress,
			"noExpand":      noExpand,
			"decimalPoint":  decimalPoint,
			"logLevel":      logger.GetLevel().String(),
			"logFormat":     "json",
		}).Debug("Configuration loaded")
		return
	}
	logger.Debugf("Starting with config: output=%s workers=%d cache=%d no-progress=%t no-expand=%t decimal-point=%q level=%s format=text",
		outputFormat, hashWorkers, hashCacheSize, noProgress, noExpand, decimalPoint, logger.GetLevel())
}
