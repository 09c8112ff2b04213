package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rs/zerolog"
)

const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Config holds the settings read from the config file and environment.
type Config struct {
	DataFile string `yaml:"data_file" env:"TODO_DATA_FILE"`
	Backend  string `yaml:"backend" env:"TODO_BACKEND" env-default:"json"`
	LogLevel string `yaml:"log_level" env:"TODO_LOG_LEVEL" env-default:"info"`
	LogFile  string `yaml:"log_file" env:"TODO_LOG_FILE"`
}

// Reader loads a Config.
type Reader interface {
	Read() (*Config, error)
}

// FileReader reads an optional YAML file and applies environment overrides.
// A missing file leaves only the environment and defaults.
type FileReader struct {
	Path string
}

// NewFileReader returns a Reader for the YAML file at path.
func NewFileReader(path string) FileReader {
	return FileReader{Path: path}
}

// DefaultPath returns $XDG_CONFIG_HOME/todo/config.yaml.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "todo", "config.yaml")
}

func (r FileReader) Read() (*Config, error) {
	cfg := new(Config)
	if r.Path != "" {
		if _, err := os.Stat(r.Path); err == nil {
			if err := cleanenv.ReadConfig(r.Path, cfg); err != nil {
				return nil, fmt.Errorf("read config %s: %w", r.Path, err)
			}
			return cfg, nil
		}
	}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	return cfg, nil
}

// Resolve fills in the data and log file locations under dataDir when they
// are unset and checks the remaining values.
func (c *Config) Resolve(dataDir string) error {
	switch c.Backend {
	case BackendJSON, BackendSQLite:
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	if c.DataFile == "" {
		name := "tasks.json"
		if c.Backend == BackendSQLite {
			name = "todo.db"
		}
		c.DataFile = filepath.Join(dataDir, name)
	}
	if c.LogFile == "" {
		c.LogFile = filepath.Join(filepath.Dir(c.DataFile), "todo.log")
	}
	return nil
}
