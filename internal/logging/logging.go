// Package logging configures the process-wide zerolog logger.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup routes the global logger to a console writer on w (stderr when nil)
// and sets the minimum level.
func Setup(level zerolog.Level, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.TimeOnly,
		NoColor:    w != os.Stderr,
	}).With().Timestamp().Logger()
}

// Module returns a sub-logger tagged with the module name
func Module(name string) zerolog.Logger {
	return log.With().Str("module", name).Logger()
}
