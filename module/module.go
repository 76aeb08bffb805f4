// Package module discovers game content modules on disk.
//
// A module is a directory holding a fe-project.toml manifest. The editor
// writes the manifest; the engine only reads the few fields it needs to pick
// the primary module and its window icon.
package module

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// ManifestFile is the file name that marks a directory as a module.
const ManifestFile = "fe-project.toml"

// ErrNoManifest is returned by Load when dir has no manifest.
var ErrNoManifest = errors.New("module: no " + ManifestFile)

// Module is the engine's view of a content module manifest.
type Module struct {
	Name    string `toml:"name"`
	Primary bool   `toml:"primary"`
	// Icon is a path to the window icon, relative to the module directory in
	// the manifest and made absolute by Load.
	Icon string `toml:"icon"`

	// Path is the module directory. Not stored in the manifest.
	Path string `toml:"-"`
}

// Load reads the module in dir.
func Load(dir string) (*Module, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoManifest
		}
		return nil, fmt.Errorf("open %s: %w", dir, err)
	}
	var m Module
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Join(dir, ManifestFile), err)
	}
	m.populate(dir)
	return &m, nil
}

func (m *Module) populate(dir string) {
	m.Path = dir
	if m.Name == "" {
		m.Name = filepath.Base(dir)
	}
	if m.Icon != "" && !filepath.IsAbs(m.Icon) {
		m.Icon = filepath.Join(dir, m.Icon)
	}
}

// LoadAll loads every module found in the immediate subdirectories of root.
// Subdirectories without a manifest are skipped; every other failure is
// returned alongside the modules that did load.
func LoadAll(root string) ([]Module, []error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, []error{fmt.Errorf("read module root %s: %w", root, err)}
	}

	var (
		modules []Module
		errs    []error
	)
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		m, err := Load(filepath.Join(root, e.Name()))
		switch {
		case errors.Is(err, ErrNoManifest):
		case err != nil:
			errs = append(errs, err)
		default:
			modules = append(modules, *m)
		}
	}
	return modules, errs
}

// Primary returns the first module marked primary, or nil if there is none.
// A warning is logged when more than one module claims to be primary.
func Primary(modules []Module, log *slog.Logger) *Module {
	if log == nil {
		log = slog.Default()
	}
	var result *Module
	for i := range modules {
		if !modules[i].Primary {
			continue
		}
		if result != nil {
			log.Warn("multiple primary modules loaded", "using", result.Name, "ignored", modules[i].Name)
			break
		}
		result = &modules[i]
	}
	return result
}
