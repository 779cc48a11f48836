// Package logging provides structured diagnostics for dirlist.
// Listing output goes to stdout; everything logged here goes to stderr by default.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const timeFormat = "15:04:05"

// Logger wraps zerolog with console formatting.
type Logger struct {
	zlog zerolog.Logger
}

// NewLogger creates a logger that writes console-formatted lines to w.
func NewLogger(w io.Writer) *Logger {
	return &Logger{
		zlog: zerolog.New(zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: timeFormat,
		}).With().Timestamp().Logger(),
	}
}

// NewDefaultCLILogger creates a logger writing to stderr.
func NewDefaultCLILogger() *Logger {
	return NewLogger(os.Stderr)
}

// NewNopLogger creates a logger that discards everything.
func NewNopLogger() *Logger {
	return &Logger{zlog: zerolog.Nop()}
}

// Error returns an error level event.
func (l *Logger) Error() *zerolog.Event {
	return l.zlog.Error()
}

// Debug returns a debug level event.
func (l *Logger) Debug() *zerolog.Event {
	return l.zlog.Debug()
}

// Warn returns a warn level event.
func (l *Logger) Warn() *zerolog.Event {
	return l.zlog.Warn()
}

// SetVerbose switches between debug and info level.
func SetVerbose(verbose bool) {
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		return
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func init() {
	// Set default log level to info
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	// Configure global logger
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: timeFormat,
	})
}
