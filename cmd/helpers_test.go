package main

import (
	"bytes"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

/************************************************************************************************
** Test helper functions
************************************************************************************************/

var configEnvVars = []string{
	"LOG_LEVEL", "LOG_FORMAT", "OUTPUT_FORMAT", "HASH_WORKERS", "HASH_CACHE_SIZE", "NO_PROGRESS", "DECIMAL_POINT",
}

func resetGlobalConfig() {
	outputFormat = "text"
	hashWorkers = 2
	hashCacheSize = 10
	noProgress = true
	noExpand = false
	decimalPoint = "."
	showGroups = false
	outFile = ""
	anySeparator = false
}

func resetTestEnv() {
	for _, key := range configEnvVars {
		os.Unsetenv(key)
	}
	outputFormat = ""
	hashWorkers = 0
	hashCacheSize = 0
	noProgress = false
	noExpand = false
	decimalPoint = ""
}

func testLogger(buf *bytes.Buffer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(buf)
	logger.SetLevel(logrus.DebugLevel)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	return logger
}

func init() {
	color.NoColor = true
}
