package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"go.uber.org/zap"

	"github.com/leterax/go-planets/internal/config"
	"github.com/leterax/go-planets/internal/logger"
	"github.com/leterax/go-planets/internal/openglhelper"
	"github.com/leterax/go-planets/internal/overlay"
	"github.com/leterax/go-planets/pkg/camera"
	"github.com/leterax/go-planets/pkg/game"
	"github.com/leterax/go-planets/pkg/render"
	"github.com/leterax/go-planets/pkg/scene"
)

func init() {
	// GLFW and OpenGL calls must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "planets.yaml", "Path to the YAML config file")
	watch := flag.Bool("watch", false, "Reload bindings and tuning when the config file changes")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}
	if *debug {
		cfg.Logging.Level = "debug"
		cfg.Logging.Development = true
	}

	lg, err := logger.New(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	lg.Info("starting",
		zap.String("config", *configPath),
		zap.Strings("bindings", cfg.Summary()),
		zap.Float64("world_scale", cfg.WorldScale),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, *configPath, *watch, lg); err != nil {
		lg.Fatal("viewer stopped", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, configPath string, watch bool, lg *zap.Logger) error {
	window, err := openglhelper.NewWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, cfg.Window.VSync, lg)
	if err != nil {
		return err
	}
	defer window.Close()

	if err := window.SetBindings(cfg.InputBindings()); err != nil {
		return err
	}

	reg := scene.NewRegistry()
	defer reg.Close()
	reg.Seed()

	panel := overlay.NewPanel(10, 10, 300, 120)
	inspector := overlay.NewInspector(cfg.Window.Title, window, cfg.WorldScale)
	inspector.EditCameras(reg, cfg.Camera.Apply)

	coordinator := camera.NewCoordinator(window, reg, lg)

	loop := game.NewLoop(reg, coordinator, lg)
	loop.SetOverlay(panel)
	loop.Add(inspector)
	window.AttachPointer(loop.Input())

	renderer, err := render.NewRenderer(window, panel, lg)
	if err != nil {
		return err
	}
	defer renderer.Cleanup()

	coordinator.Sync()

	if watch {
		w, err := config.Watch(ctx, configPath, lg, func(next *config.Config) {
			loop.Schedule(func() { applyReload(next, window, inspector, reg, lg) })
		})
		if err != nil {
			return err
		}
		defer w.Close()
	}

	err = loop.Run(ctx, window, func() { renderer.Draw(reg) })
	if errors.Is(err, context.Canceled) {
		lg.Info("interrupted")
		return nil
	}
	return err
}

// applyReload runs on the loop goroutine between ticks
func applyReload(cfg *config.Config, window *openglhelper.Window, inspector *overlay.Inspector, reg *scene.Registry, lg *zap.Logger) {
	if err := window.SetBindings(cfg.InputBindings()); err != nil {
		lg.Warn("keeping previous bindings", zap.Error(err))
	}
	inspector.SetWorldScale(cfg.WorldScale)
	inspector.EditCameras(reg, cfg.Camera.Apply)
}
