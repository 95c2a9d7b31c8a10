package log

import (
	"io"
	"log/slog"
	"os"

	"github.com/rs/zerolog"
	slogzerolog "github.com/samber/slog-zerolog"

	"github.com/clawpad/clawpad/config"
)

func NewLogger(cfg *config.Config) *slog.Logger {
	return newLogger(os.Stderr, cfg.GetLogFormat(), cfg.GetLogLevel()).With(
		slog.String("version", config.Version),
		slog.String("environment", cfg.GetEnvironment()),
	)
}

// NewDiscardLogger returns a logger that drops every record; handlers under test use it.
func NewDiscardLogger() *slog.Logger {
	return newLogger(io.Discard, "json", slog.LevelError)
}

func newLogger(out io.Writer, format string, level slog.Level) *slog.Logger {
	var zerologLogger zerolog.Logger
	if format == "json" {
		zerologLogger = zerolog.New(out).With().Timestamp().Logger()
	} else {
		zerologLogger = zerolog.New(zerolog.ConsoleWriter{Out: out}).With().Timestamp().Logger()
	}
	return slog.New(slogzerolog.Option{Level: level, Logger: &zerologLogger}.NewZerologHandler())
}
