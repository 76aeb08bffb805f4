package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name       string
		createFile bool
		content    string
		wantErr    bool
		validate   func(t *testing.T, cfg *Config)
	}{
		{
			name:       "full file",
			createFile: true,
			content: `window:
  title: "Test"
  scale: 2
  tps: 30
controls:
  scheme: "gamepad"
logging:
  level: "debug"
  format: "json"
modules:
  dir: "games"
debug:
  show_fps: true
  script: "smoke.json"
`,
			validate: func(t *testing.T, cfg *Config) {
				if cfg.Window.Title != "Test" || cfg.Window.Scale != 2 || cfg.Window.TPS != 30 {
					t.Errorf("Window = %+v", cfg.Window)
				}
				if cfg.Controls.Scheme != "gamepad" {
					t.Errorf("Controls.Scheme = %q", cfg.Controls.Scheme)
				}
				if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
					t.Errorf("Logging = %+v", cfg.Logging)
				}
				if cfg.Modules.Dir != "games" {
					t.Errorf("Modules.Dir = %q", cfg.Modules.Dir)
				}
				if !cfg.Debug.ShowFPS || cfg.Debug.Script != "smoke.json" {
					t.Errorf("Debug = %+v", cfg.Debug)
				}
			},
		},
		{
			name:       "partial file keeps defaults",
			createFile: true,
			content:    "logging:\n  level: warn\n",
			validate: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "warn" {
					t.Errorf("Logging.Level = %q, want warn", cfg.Logging.Level)
				}
				if cfg.Window.Title != DefaultTitle || cfg.Window.Scale != DefaultScale {
					t.Errorf("Window = %+v, want defaults", cfg.Window)
				}
			},
		},
		{
			name:       "missing file",
			createFile: false,
			validate: func(t *testing.T, cfg *Config) {
				if cfg.Window.TPS != DefaultTPS || cfg.Modules.Dir != "." || cfg.Controls.Scheme != "keyboard" {
					t.Errorf("cfg = %+v, want defaults", cfg)
				}
			},
		},
		{
			name:       "blank file",
			createFile: true,
			content:    "  \n",
			validate: func(t *testing.T, cfg *Config) {
				if cfg.Window.Title != DefaultTitle {
					t.Errorf("Window.Title = %q", cfg.Window.Title)
				}
			},
		},
		{
			name:       "invalid yaml",
			createFile: true,
			content:    "window: [unclosed",
			wantErr:    true,
		},
		{
			name:       "invalid scale",
			createFile: true,
			content:    "window:\n  scale: 0\n",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "engine.yaml")
			if tt.createFile {
				if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
					t.Fatal(err)
				}
			}
			cfg, err := Load(path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if !strings.Contains(err.Error(), "engine.yaml") {
					t.Errorf("error %q should name the file", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			tt.validate(t, cfg)
		})
	}
}

func TestLoadReadError(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(dir)
	if err == nil {
		t.Fatal("expected error reading a directory")
	}
	if !strings.HasPrefix(err.Error(), "read "+dir) {
		t.Errorf("error %q should name the path it failed to read", err)
	}
}

func TestGridFitsScreen(t *testing.T) {
	if GridCols*TileSize != ScreenWidth || GridRows*TileSize != ScreenHeight {
		t.Errorf("grid %dx%d does not tile %dx%d", GridCols, GridRows, ScreenWidth, ScreenHeight)
	}
}
