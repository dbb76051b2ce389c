package logger

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var globalLogger zerolog.Logger

var once sync.Once

// Init configures the global zerolog logger. Safe to call more than once;
// only the first call takes effect.
func Init(level string) {
	once.Do(func() {
		lvl, err := zerolog.ParseLevel(level)
		if err != nil {
			lvl = zerolog.InfoLevel
		}

		l := zerolog.New(os.Stdout).With().Timestamp().Logger().Level(lvl)
		globalLogger = l
		// Set the global logger used by the zerolog/log package for convenience.
		log.Logger = l
	})
}

// Get returns the configured global logger.
func Get() *zerolog.Logger {
	return &globalLogger
}

// Debug logs a debug level message.
func Debug(msg string, args ...interface{}) {
	globalLogger.Debug().Msgf(msg, args...)
}

// Info logs an info level message.
func Info(msg string, args ...interface{}) {
	globalLogger.Info().Msgf(msg, args...)
}

// Warn logs a warning level message.
func Warn(msg string, args ...interface{}) {
	globalLogger.Warn().Msgf(msg, args...)
}

// Error logs an error level message with the error attached as a structured
// field. A nil error logs the message alone.
func Error(msg string, err error) {
	globalLogger.Error().Err(err).Msg(msg)
}
