// Package store persists the whole task collection between runs. Every
// Save replaces what was stored before; there are no incremental updates.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/nissyi-gh/todo/internal/codec"
	"github.com/nissyi-gh/todo/internal/model"
)

// Gateway loads and saves the full collection.
type Gateway interface {
	Load() ([]model.Task, error)
	Save(tasks []model.Task) error
	Close() error
}

// Backuper is implemented by stores that can copy their current contents
// aside before they are overwritten.
type Backuper interface {
	Backup() (path string, err error)
}

// DefaultDataDir returns $XDG_DATA_HOME/todo, or ~/.local/share/todo.
func DefaultDataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "todo"), nil
}

// LoadOrEmpty loads the collection, falling back to an empty one when the
// stored data is missing, unreadable or malformed. One bad record makes the
// whole collection malformed; when g is a Backuper the malformed data is
// copied aside first, since the next save overwrites it.
func LoadOrEmpty(g Gateway, logger zerolog.Logger) []model.Task {
	tasks, err := g.Load()
	if err == nil {
		logger.Debug().Int("count", len(tasks)).Msg("loaded tasks")
		return tasks
	}

	var de *codec.DeserializationError
	if errors.As(err, &de) {
		event := logger.Warn().Err(err)
		if b, ok := g.(Backuper); ok {
			if path, berr := b.Backup(); berr != nil {
				logger.Error().Err(berr).Msg("failed to back up malformed tasks")
			} else {
				event = event.Str("backup", path)
			}
		}
		event.Msg("stored tasks are malformed, starting empty")
	} else {
		logger.Error().Err(err).Msg("failed to load tasks, starting empty")
	}
	return []model.Task{}
}

// FileStore keeps the collection as a JSON array in a single file.
type FileStore struct {
	path string
}

// NewFileStore returns a store for path, creating its directory.
func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{path: path}, nil
}

func (s *FileStore) Path() string { return s.path }

// Load reads the file. A missing file is an empty collection.
func (s *FileStore) Load() ([]model.Task, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []model.Task{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read tasks: %w", err)
	}
	return codec.Unmarshal(data)
}

// Save overwrites the file with tasks.
func (s *FileStore) Save(tasks []model.Task) error {
	data, err := codec.Marshal(tasks)
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write tasks: %w", err)
	}
	return nil
}

// Backup copies the file to its path plus ".bak", replacing any earlier
// backup.
func (s *FileStore) Backup() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("read tasks: %w", err)
	}
	bak := s.path + ".bak"
	if err := os.WriteFile(bak, data, 0o644); err != nil {
		return "", fmt.Errorf("write backup: %w", err)
	}
	return bak, nil
}

func (s *FileStore) Close() error { return nil }
