// Package telemetry configures structured logging for the agent and carries
// the turn correlation id through contexts.
package telemetry

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	logger = zerolog.New(io.Discard)
)

// Init configures the package logger. Events are written to logFile when set
// and discarded otherwise; debug lowers the level to Debug. It returns the
// logger so callers can hold their own handle.
func Init(debug bool, logFile string) (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	var out io.Writer = io.Discard
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), err
		}
		out = f
	}

	l := zerolog.New(out).Level(level).With().Timestamp().Logger()
	mu.Lock()
	logger = l
	mu.Unlock()
	return l, nil
}

// L returns the configured logger.
func L() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Emit writes one structured event with the given fields at info level.
func Emit(event string, fields map[string]any) {
	l := L()
	l.Info().Fields(fields).Msg(event)
}
