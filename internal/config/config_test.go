package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Viewer.Model != "" {
		t.Errorf("expected empty model path, got %s", cfg.Viewer.Model)
	}
	if cfg.Viewer.IndexOverflow != "clamp" {
		t.Errorf("expected index_overflow 'clamp', got %s", cfg.Viewer.IndexOverflow)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`graphics:
  width: 800
  height: 600
viewer:
  model: models/duck.glb
  index_overflow: fail
logging:
  level: debug
`)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("loadFromFile() error = %v", err)
	}

	if cfg.Graphics.Width != 800 || cfg.Graphics.Height != 600 {
		t.Errorf("expected 800x600, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if cfg.Viewer.Model != "models/duck.glb" {
		t.Errorf("expected model models/duck.glb, got %s", cfg.Viewer.Model)
	}
	if cfg.Viewer.IndexOverflow != "fail" {
		t.Errorf("expected index_overflow 'fail', got %s", cfg.Viewer.IndexOverflow)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	// Values absent from the file keep their defaults
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to keep its default")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Graphics.Width = 1920
	cfg.Viewer.Model = "scene.gltf"

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile() error = %v", err)
	}

	if loaded.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", loaded.Graphics.Width)
	}
	if loaded.Viewer.Model != "scene.gltf" {
		t.Errorf("expected model scene.gltf, got %s", loaded.Viewer.Model)
	}
}
