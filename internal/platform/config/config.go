package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	apperrors "articlecards/internal/platform/errors"
)

const (
	// DefaultFile is looked up in the working directory when no --config is given.
	DefaultFile     = "articlecards.yml"
	DefaultDataPath = "ARTICLES.json"
	DefaultLogLevel = "warn"
)

var logLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
	"off":   true,
}

type Config struct {
	// BaseLocation is the page location the data path is resolved against:
	// a directory, a file, or an http(s)/file URL.
	BaseLocation string        `yaml:"base"`
	DataPath     string        `yaml:"data"`
	PagePath     string        `yaml:"page"`
	LogLevel     string        `yaml:"log_level"`
	Timeout      time.Duration `yaml:"timeout"`
}

func Default() Config {
	return Config{
		BaseLocation: ".",
		DataPath:     DefaultDataPath,
		LogLevel:     DefaultLogLevel,
	}
}

// Load reads path on top of Default. An empty path falls back to DefaultFile
// and tolerates its absence; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		path = DefaultFile
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.BaseLocation) == "" {
		return fmt.Errorf("%w: base location is required", apperrors.ErrInvalidInput)
	}
	if strings.TrimSpace(c.DataPath) == "" {
		return fmt.Errorf("%w: data path is required", apperrors.ErrInvalidInput)
	}
	if !logLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("%w: unsupported log level %q", apperrors.ErrInvalidInput, c.LogLevel)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: timeout must not be negative", apperrors.ErrInvalidInput)
	}
	return nil
}
