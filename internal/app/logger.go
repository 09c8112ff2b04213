package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/nissyi-gh/todo/internal/config"
)

// NewLogger builds the application logger. Stdout belongs to the menu, so
// records go to cfg.LogFile unless verbose is set, in which case they are
// written to stderr through a console writer at debug level.
func NewLogger(cfg *config.Config, verbose bool) (zerolog.Logger, io.Closer, error) {
	zerolog.TimestampFieldName = "timestamp"

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("log level: %w", err)
	}

	var w io.Writer
	var closer io.Closer = nopCloser{}
	if verbose {
		level = zerolog.DebugLevel
		consoleWriter := zerolog.NewConsoleWriter()
		consoleWriter.TimeFormat = time.DateTime
		consoleWriter.Out = os.Stderr
		w = consoleWriter
	} else {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Caller().
		Int("pid", os.Getpid()).
		Logger()

	logger.Debug().
		Str("backend", cfg.Backend).
		Str("data_file", cfg.DataFile).
		Msg("initialized application logger")
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
