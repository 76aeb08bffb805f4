// Package config loads engine settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the engine settings file.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Controls ControlsConfig `yaml:"controls"`
	Logging  LoggingConfig  `yaml:"logging"`
	Modules  ModulesConfig  `yaml:"modules"`
	Debug    DebugConfig    `yaml:"debug"`
}

// WindowConfig sizes the window and sets the tick rate.
type WindowConfig struct {
	Title string `yaml:"title"`
	Scale int    `yaml:"scale"`
	TPS   int    `yaml:"tps"`
}

// ControlsConfig selects the control scheme.
type ControlsConfig struct {
	// Scheme names a built-in control scheme: "keyboard" or "gamepad".
	Scheme string `yaml:"scheme"`
}

// LoggingConfig is passed to logger.New.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "text" or "json"
}

// ModulesConfig locates content modules.
type ModulesConfig struct {
	// Dir is scanned one level deep for content modules.
	Dir string `yaml:"dir"`
}

// DebugConfig holds development aids.
type DebugConfig struct {
	ShowFPS bool `yaml:"show_fps"`
	// Script is an optional JSON input script replayed at startup.
	Script string `yaml:"script"`
}

// Default returns the settings used when no file is present.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title: DefaultTitle,
			Scale: DefaultScale,
			TPS:   DefaultTPS,
		},
		Controls: ControlsConfig{Scheme: "keyboard"},
		Logging:  LoggingConfig{Level: "info", Format: "text"},
		Modules:  ModulesConfig{Dir: "."},
	}
}

// Load reads settings from path on top of Default. A missing or blank file
// yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Window.Scale < 1 {
		return fmt.Errorf("window.scale must be at least 1, got %d", c.Window.Scale)
	}
	if c.Window.TPS < 1 {
		return fmt.Errorf("window.tps must be at least 1, got %d", c.Window.TPS)
	}
	return nil
}
