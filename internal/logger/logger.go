// Package logger holds the process-wide zerolog logger.
package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var root = zerolog.New(zerolog.ConsoleWriter{
	Out:        os.Stderr,
	TimeFormat: time.RFC3339,
}).With().Timestamp().Logger().Level(zerolog.WarnLevel)

// SetLevel parses a level name and applies it to the root logger.
// Unknown names leave the level unchanged.
func SetLevel(level string) {
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		root.Warn().Str("level", level).Msg("unknown log level, keeping current")
		return
	}
	root = root.Level(parsed)
}

// For returns a component-scoped logger
func For(component string) zerolog.Logger {
	return root.With().Str("component", component).Logger()
}
