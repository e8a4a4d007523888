// Package logging configures the zerolog logger shared by every command.
// Console output goes to the command's stderr; a copy can be appended to
// a log file under the XDG state directory.
package logging

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/skinmanager/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	appDirName  = "skinmanager"
	logFileName = "skinmanager.log"
)

// levels maps -v counts to levels; anything past the end logs at trace
var levels = []zerolog.Level{zerolog.WarnLevel, zerolog.InfoLevel, zerolog.DebugLevel}

// LevelFor returns the level for a verbosity count
func LevelFor(verbosity int) zerolog.Level {
	if verbosity < 0 {
		return levels[0]
	}
	if verbosity >= len(levels) {
		return zerolog.TraceLevel
	}
	return levels[verbosity]
}

// SetupLoggerWithOutput configures the global logger writing console output to out.
// When withFile is set, entries are also appended to LogFilePath; failing to
// open it is logged and otherwise ignored.
func SetupLoggerWithOutput(verbosity int, out io.Writer, withFile bool) {
	zerolog.SetGlobalLevel(LevelFor(verbosity))
	zerolog.ErrorMarshalFunc = marshalError

	writers := []io.Writer{zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}}

	logFile := ""
	var fileErr error
	if withFile {
		logFile = LogFilePath()
		var handle *os.File
		if handle, fileErr = openLogFile(logFile); fileErr == nil {
			writers = append(writers, handle)
		}
	}

	ctx := zerolog.New(io.MultiWriter(writers...)).With().Timestamp()
	if verbosity >= 2 {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()

	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", logFile).Msg("Failed to open log file, logging to console only")
	}
	log.Debug().Int("verbosity", verbosity).Str("logFile", logFile).Msg("Logger initialized")
}

// marshalError logs coded errors as objects so their code and details
// stay searchable in the log file
func marshalError(err error) interface{} {
	var skinErr *errors.SkinError
	if stderrors.As(err, &skinErr) {
		return skinErr
	}
	return err
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// LogFilePath returns $XDG_STATE_HOME/skinmanager/skinmanager.log, falling
// back to the working directory when no state directory is known
func LogFilePath() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		stateHome = xdg.StateHome
	}
	if stateHome == "" {
		return logFileName
	}
	return filepath.Join(stateHome, appDirName, logFileName)
}

func openLogFile(logPath string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}

// LogOperationStart logs the start of an operation and returns a function to log its completion
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().Str("operation", operation).Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
