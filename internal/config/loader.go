package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	pathEnv     = "CONFIG_PATH"
	defaultPath = "./config.yaml"
)

// Load builds and validates the calendar service configuration.
// Environment variables override the YAML file, which overrides env-default tags.
//
// The file is taken from CONFIG_PATH. Without it, ./config.yaml is read when
// present and the environment alone is used otherwise.
func Load() (*Config, error) {
	cfg, err := read(os.Getenv(pathEnv))
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return cfg, nil
}

func read(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		path = defaultPath
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			if err := cleanenv.ReadEnv(&cfg); err != nil {
				return nil, fmt.Errorf("config: read env: %w", err)
			}
			return &cfg, nil
		}
	}

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return &cfg, nil
}
