package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/parallax-runner/internal/config"
	"github.com/vovakirdan/parallax-runner/internal/parallax"
)

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	if err := os.WriteFile(path, config.DefaultYAML(), 0o600); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	cfg, err := loadConfig(path, "meadow", config.CameraStatic)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.Parallax.Environment != "meadow" || cfg.Parallax.Layers != nil {
		t.Errorf("environment = %q with %d layers, expected meadow preset", cfg.Parallax.Environment, len(cfg.Parallax.Layers))
	}
	if cfg.Camera.Policy != config.CameraStatic {
		t.Errorf("camera = %q, expected %q", cfg.Camera.Policy, config.CameraStatic)
	}
}

func TestLoadConfigRejectsCamera(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	if err := os.WriteFile(path, config.DefaultYAML(), 0o600); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	if _, err := loadConfig(path, "", "orbit"); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("loadConfig() error = %v, expected ErrInvalidConfig", err)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "none.yaml"), "", ""); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("loadConfig() error = %v, expected ErrInvalidConfig", err)
	}
}

func TestLoadConfigRejectsShortLayers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	data := strings.Replace(string(config.DefaultYAML()), "count: 4", "count: 1", 1)
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	if _, err := loadConfig(path, "", ""); !errors.Is(err, parallax.ErrInvalidLayer) {
		t.Errorf("loadConfig() error = %v, expected ErrInvalidLayer", err)
	}
}
