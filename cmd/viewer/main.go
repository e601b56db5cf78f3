// Package main is the entry point for the glTF viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/mopinfish/gltfview/internal/config"
	"github.com/mopinfish/gltfview/internal/engine/input"
	"github.com/mopinfish/gltfview/internal/engine/viewer"
	"github.com/mopinfish/gltfview/internal/engine/window"
	"github.com/mopinfish/gltfview/internal/logger"
	"github.com/mopinfish/gltfview/pkg/scene"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	scene.SetLogger(logger.Log)

	logger.Info("=== glTF Viewer ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}

func run(cfg *config.Config) error {
	win, err := window.New(window.Config{
		Title:      "glTF Viewer",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer win.Close()

	v, err := viewer.New(win, viewer.Config{
		Width:    cfg.Graphics.Width,
		Height:   cfg.Graphics.Height,
		Overflow: scene.ParsePolicy(cfg.Viewer.IndexOverflow),
	})
	if err != nil {
		return fmt.Errorf("failed to create viewer: %w", err)
	}
	defer v.Close()

	if cfg.Viewer.Model != "" {
		if err := v.LoadFile(cfg.Viewer.Model); err != nil {
			return fmt.Errorf("failed to load %s: %w", cfg.Viewer.Model, err)
		}
	}

	in := input.New()
	for {
		if in.Update() {
			return nil
		}

		for _, ev := range in.Events() {
			switch ev.Type {
			case input.EventWindowResize:
				v.Resize(ev.Width, ev.Height)

			case input.EventMouseDrag:
				v.Orbit(ev.DragX, ev.DragY)

			case input.EventDropFile:
				loadDropped(v, ev.Path)
			}
		}

		v.Render()
		win.SwapBuffers()
	}
}

// loadDropped loads a file dropped onto the window. Failures are logged,
// never fatal.
func loadDropped(v *viewer.Viewer, path string) {
	logger.Info("file dropped", zap.String("path", path))
	if err := v.LoadFile(path); err != nil {
		logger.Warn("failed to load dropped file",
			zap.String("path", path),
			zap.Error(err),
		)
	}
}
