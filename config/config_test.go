/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Storage.File != DefaultFile {
		t.Errorf("Expected default file %q, got %q", DefaultFile, cfg.Storage.File)
	}
}

func TestLoad(t *testing.T) {
	t.Run("MissingFileUsesDefaults", func(t *testing.T) {
		t.Setenv(EnvFile, "")
		cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.Storage.File != DefaultFile {
			t.Errorf("Expected default file, got %q", cfg.Storage.File)
		}
	})

	t.Run("YAMLFile", func(t *testing.T) {
		t.Setenv(EnvFile, "")
		path := filepath.Join(t.TempDir(), "objectstore.yaml")
		body := "storage:\n  file: objects.json\n"
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatalf("Seeding the config failed: %v", err)
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.Storage.File != "objects.json" {
			t.Errorf("Expected objects.json, got %q", cfg.Storage.File)
		}
	})

	t.Run("EnvOverride", func(t *testing.T) {
		t.Setenv(EnvFile, "override.json")
		cfg, err := Load("")
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.Storage.File != "override.json" {
			t.Errorf("Expected override.json, got %q", cfg.Storage.File)
		}
	})

	t.Run("MalformedYAML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "objectstore.yaml")
		if err := os.WriteFile(path, []byte("storage: [broken"), 0o644); err != nil {
			t.Fatalf("Seeding the config failed: %v", err)
		}

		if _, err := Load(path); err == nil {
			t.Error("Malformed YAML should fail")
		}
	})
}
