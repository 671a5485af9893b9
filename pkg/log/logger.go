// Package log configures structured logging for the SIF-water pipeline.
// It installs a JSON slog handler whose records carry stack traces extracted
// from cockroachdb/errors, so a fatal pipeline error logs where it came from.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/rs/zerolog"

	"github.com/shuozhangthu/SIF-water/pkg/errors"
)

// SetupLogger installs the process-wide slog logger and routes estimator
// warnings through a zerolog sink on the same stream.
func SetupLogger(loglevel string) {
	ops := slog.HandlerOptions{
		AddSource: true,
		Level:     ToLogLevel(loglevel),
	}
	handler := slog.NewJSONHandler(os.Stderr, &ops)
	errFmtHandler := WrapByErrFmtHandler(handler)
	slog.SetDefault(slog.New(errFmtHandler))

	errors.SetZerologWarnFunc(newZerologWarnFunc(os.Stderr))
}

// newZerologWarnFunc builds the warning sink. Warning types implementing
// zerolog.LogObjectMarshaler contribute their structured fields to the event.
func newZerologWarnFunc(w io.Writer) func(warning error) {
	logger := zerolog.New(w).With().Timestamp().Logger()
	return func(warning error) {
		event := logger.Warn()
		if obj, ok := warning.(zerolog.LogObjectMarshaler); ok {
			event = event.EmbedObject(obj)
		}
		event.Msg(warning.Error())
	}
}

// ToLogLevel maps a level name to its slog level.
func ToLogLevel(level string) slog.Level {
	switch level {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		panic(fmt.Sprintf("invalid log level :%s", level))
	}
}

const (
	ErrAttrKey        = "error"
	StacktraceAttrKey = "stacktrace"
)

// ErrAttr is a wrapper to pass err to slog.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrAttrKey, err)
}
