/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package config resolves the backing-file settings for ObjectStore.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultFile is the backing file used when nothing else is configured.
	DefaultFile = "file.json"

	// EnvFile overrides the backing file path from the environment.
	EnvFile = "OBJECTSTORE_FILE"
)

// Config holds all configuration for ObjectStore.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
}

// StorageConfig holds backing-file settings.
type StorageConfig struct {
	File string `yaml:"file"`
}

// Default returns the configuration used without a config file.
func Default() Config {
	return Config{Storage: StorageConfig{File: DefaultFile}}
}

// Load reads an optional YAML config file and applies environment overrides.
// A missing config file is not an error; defaults apply. A .env file in the
// working directory is honored the same way as real environment variables.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Default(), fmt.Errorf("parse config %q: %w", path, err)
			}
			if cfg.Storage.File == "" {
				cfg.Storage.File = DefaultFile
			}
		case !os.IsNotExist(err):
			return Default(), fmt.Errorf("read config %q: %w", path, err)
		}
	}

	// No .env file is fine; environment variables still apply.
	_ = godotenv.Load()

	if v := os.Getenv(EnvFile); v != "" {
		cfg.Storage.File = v
	}
	return cfg, nil
}
