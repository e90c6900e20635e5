// Package logging configures the global logrus logger.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type SetupParams struct {
	// LogFileName is the rotated log file; empty disables file logging
	LogFileName string
	// Verbose additionally writes logs to Stderr and raises the level to debug
	Verbose       bool
	LogLevel      string
	LogFormatJSON bool
	// Stderr defaults to os.Stderr
	Stderr io.Writer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup points the global logrus logger at the configured outputs.
// The returned closer releases the log file.
func Setup(params SetupParams) io.Closer {
	if params.LogFormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level := GetLevel(params.LogLevel)
	if params.Verbose && level < logrus.DebugLevel {
		level = logrus.DebugLevel
	}
	logrus.SetLevel(level)

	stderr := params.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	if params.LogFileName == "" {
		if params.Verbose {
			logrus.SetOutput(stderr)
		} else {
			logrus.SetOutput(io.Discard)
		}
		return nopCloser{}
	}

	if !strings.HasSuffix(params.LogFileName, ".log") {
		params.LogFileName += ".log"
	}

	lumberJackLogger := &lumberjack.Logger{
		Filename:   params.LogFileName,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     30, // days
		LocalTime:  true,
	}

	if params.Verbose {
		logrus.SetOutput(NewCombinedWriter(stderr, lumberJackLogger))
	} else {
		logrus.SetOutput(lumberJackLogger)
	}

	return lumberJackLogger
}

// GetLevel maps a level name to a logrus level. Unknown names give info.
func GetLevel(level string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return logrus.DebugLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	case "trace":
		return logrus.TraceLevel
	case "warn", "warning":
		return logrus.WarnLevel
	default:
		return logrus.InfoLevel
	}
}
