// Package logging configures zerolog for the server and CLI.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup builds a logger at the named level (falling back to info), writing
// human-readable console output when pretty is set and JSON otherwise. The
// logger is also installed as the global zerolog logger.
func Setup(level string, pretty bool) zerolog.Logger {
	return setup(os.Stderr, level, pretty)
}

func setup(out io.Writer, level string, pretty bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	if pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	} else {
		zerolog.TimeFieldFormat = time.RFC3339Nano
	}
	logger := zerolog.New(out).Level(lvl).With().Timestamp().Logger()
	log.Logger = logger
	return logger
}
