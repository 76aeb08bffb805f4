// Command fe-engine runs the tactics engine against the content modules found
// in the configured directory.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/phanxgames/emblem"
	"github.com/phanxgames/emblem/config"
	"github.com/phanxgames/emblem/input"
	"github.com/phanxgames/emblem/logger"
	"github.com/phanxgames/emblem/module"
)

func main() {
	configPath := flag.String("config", "configs/engine.yaml", "engine settings file")
	scriptPath := flag.String("script", "", "JSON input script to replay (overrides debug.script)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	slog.SetDefault(log)

	modules, errs := module.LoadAll(cfg.Modules.Dir)
	for _, err := range errs {
		log.Error("Failed to open module", "error", err)
	}
	for _, m := range modules {
		log.Info("Loaded module", "name", m.Name, "path", m.Path)
	}

	run := emblem.RunConfig{
		Title: cfg.Window.Title,
		Scale: cfg.Window.Scale,
		TPS:   cfg.Window.TPS,
	}
	if primary := module.Primary(modules, log); primary != nil && primary.Icon != "" {
		icon, err := emblem.LoadIcon(primary.Icon)
		if err != nil {
			log.Error("Failed to use module icon", "module", primary.Name, "error", err)
		} else {
			run.Icon = icon
		}
	}

	bindings, err := emblem.ControlScheme(cfg.Controls.Scheme)
	if err != nil {
		log.Error("Invalid controls", "error", err)
		os.Exit(1)
	}

	backend := input.NewEbitenBackend()
	if *scriptPath == "" {
		*scriptPath = cfg.Debug.Script
	}
	if *scriptPath != "" {
		data, err := os.ReadFile(*scriptPath)
		if err != nil {
			log.Error("Failed to read input script", "error", err)
			os.Exit(1)
		}
		runner, err := input.LoadScript(data)
		if err != nil {
			log.Error("Failed to load input script", "error", err)
			os.Exit(1)
		}
		backend.SetScript(runner)
	}

	engine := emblem.NewEngine(emblem.EngineConfig{
		Bindings: bindings,
		Backend:  backend,
		Logger:   log,
		ShowFPS:  cfg.Debug.ShowFPS,
	})
	log.Info("Engine initialized", "actions", len(engine.Input().Actions()))

	if err := emblem.Run(engine, run); err != nil {
		log.Error("Engine stopped", "error", err)
		os.Exit(1)
	}
}
