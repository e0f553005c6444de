package logger

import (
	"io"
	"os"
	"saapadu/config"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const FormatJSON = "json"

func InitLogger() {
	InitLoggerWithOutput(os.Stdout)
}

// InitLoggerWithOutput routes the global logger to out. The CLI passes stderr so
// reports on stdout stay clean.
func InitLoggerWithOutput(out io.Writer) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	if config.Get().Server.LogFormat != FormatJSON {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	log.Logger = zerolog.New(out).With().
		Timestamp().
		Str("app", config.Get().App.Name).
		Logger()

	log.Trace().Msg("Zerolog initialized.")
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

// StorageReadError records a stored value that was replaced by its default.
func StorageReadError(key string, err error) {
	log.Warn().Err(err).Str("key", key).Msg("storage value unreadable, using default")
}

// SetLogLevel applies SERVER_LOG_LEVEL. An unknown level keeps everything at trace.
func SetLogLevel(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		level = zerolog.TraceLevel
	}

	zerolog.SetGlobalLevel(level)
	log.Trace().Str("loglevel", level.String()).Msg("Log level set")
}
