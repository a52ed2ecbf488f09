// Package logging builds the zerolog logger used by the gojwt commands.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/MrEthical07/goJWT/internal/config"
)

// NewLogger returns a logger writing to out in the configured format and
// level. Text output goes through a console writer; JSON output carries a
// unix timestamp.
func NewLogger(conf config.LoggingConfig, out io.Writer) zerolog.Logger {
	if conf.Format == config.LogTextFormat {
		return zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
			w.Out = out
			w.TimeFormat = time.RFC3339
			w.NoColor = true
		})).Level(conf.Level).With().Timestamp().Logger()
	}

	return zerolog.New(out).Level(conf.Level).With().
		Str("service", "gojwt").
		Timestamp().
		Logger()
}
