package module

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeManifest(t *testing.T, root, name, content string) string {
	t.Helper()
	dir := filepath.Join(root, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if content != "" {
		if err := os.WriteFile(filepath.Join(dir, ManifestFile), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestLoad(t *testing.T) {
	root := t.TempDir()
	dir := writeManifest(t, root, "example-game", `
name = "Example Game"
primary = true
icon = "icon.png"
`)

	m, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Name != "Example Game" || !m.Primary {
		t.Errorf("unexpected module: %+v", m)
	}
	if m.Path != dir {
		t.Errorf("Path = %q, want %q", m.Path, dir)
	}
	if m.Icon != filepath.Join(dir, "icon.png") {
		t.Errorf("Icon = %q, want it resolved against the module dir", m.Icon)
	}
}

func TestLoadDefaultsNameToDir(t *testing.T) {
	dir := writeManifest(t, t.TempDir(), "untitled", `primary = false`)
	m, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if m.Name != "untitled" {
		t.Errorf("Name = %q, want untitled", m.Name)
	}
}

func TestLoadErrors(t *testing.T) {
	root := t.TempDir()

	empty := writeManifest(t, root, "empty", "")
	if _, err := Load(empty); !errors.Is(err, ErrNoManifest) {
		t.Errorf("missing manifest: err = %v, want ErrNoManifest", err)
	}

	bad := writeManifest(t, root, "bad", `name = `)
	_, err := Load(bad)
	if err == nil || errors.Is(err, ErrNoManifest) {
		t.Errorf("malformed manifest: err = %v, want parse error", err)
	}
}

func TestLoadAll(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "a", `name = "A"`)
	writeManifest(t, root, "b", `name = "B"`)
	writeManifest(t, root, "assets", "")
	writeManifest(t, root, "broken", `primary = "yes please"`)
	if err := os.WriteFile(filepath.Join(root, "README"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	modules, errs := LoadAll(root)
	if len(modules) != 2 {
		t.Fatalf("loaded %d modules, want 2", len(modules))
	}
	if modules[0].Name != "A" || modules[1].Name != "B" {
		t.Errorf("modules = %+v", modules)
	}
	if len(errs) != 1 || !strings.Contains(errs[0].Error(), "broken") {
		t.Errorf("errs = %v, want one error naming broken", errs)
	}
}

func TestLoadAllMissingRoot(t *testing.T) {
	modules, errs := LoadAll(filepath.Join(t.TempDir(), "nope"))
	if modules != nil || len(errs) != 1 {
		t.Errorf("LoadAll = (%v, %v)", modules, errs)
	}
}

func TestPrimary(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	if got := Primary([]Module{{Name: "a"}}, log); got != nil {
		t.Errorf("Primary = %+v, want nil", got)
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected log output: %q", buf.String())
	}

	modules := []Module{
		{Name: "a"},
		{Name: "b", Primary: true},
		{Name: "c", Primary: true},
	}
	got := Primary(modules, log)
	if got == nil || got.Name != "b" {
		t.Fatalf("Primary = %+v, want b", got)
	}
	if !strings.Contains(buf.String(), "multiple primary modules") {
		t.Errorf("expected a warning, got %q", buf.String())
	}
}
