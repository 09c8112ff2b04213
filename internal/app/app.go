// Package app wires configuration, logging, storage and the session
// together for the command-line entry points.
package app

import (
	"errors"
	"fmt"
	"io"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog"

	"github.com/nissyi-gh/todo/internal/config"
	"github.com/nissyi-gh/todo/internal/session"
	"github.com/nissyi-gh/todo/internal/store"
)

// Options are command-line overrides applied on top of the loaded config.
type Options struct {
	ConfigPath string
	DataFile   string
	Backend    string
	Verbose    bool
}

// App holds the opened configuration, logger and session.
type App struct {
	Config  *config.Config
	Logger  zerolog.Logger
	Session *session.Session

	logCloser io.Closer
}

// Open reads configuration, sets up logging, opens the configured store and
// loads the task collection.
func Open(opts Options) (*App, error) {
	path := opts.ConfigPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.NewFileReader(path).Read()
	if err != nil {
		return nil, err
	}
	if opts.DataFile != "" {
		cfg.DataFile = opts.DataFile
	}
	if opts.Backend != "" {
		cfg.Backend = opts.Backend
	}

	dataDir, err := store.DefaultDataDir()
	if err != nil {
		return nil, fmt.Errorf("determine data dir: %w", err)
	}
	if err := cfg.Resolve(dataDir); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger, closer, err := NewLogger(cfg, opts.Verbose)
	if err != nil {
		return nil, err
	}

	gw, err := openStore(cfg)
	if err != nil {
		logger.Error().Err(err).Str("data_file", cfg.DataFile).Msg("failed to open store")
		closer.Close()
		return nil, err
	}

	return &App{
		Config:    cfg,
		Logger:    logger,
		Session:   session.Open(gw, session.WithLogger(logger)),
		logCloser: closer,
	}, nil
}

func openStore(cfg *config.Config) (store.Gateway, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		return store.NewSQLiteStore(cfg.DataFile)
	default:
		return store.NewFileStore(cfg.DataFile)
	}
}

func (a *App) Close() error {
	return errors.Join(a.Session.Close(), a.logCloser.Close())
}
