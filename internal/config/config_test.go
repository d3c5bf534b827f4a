package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFile_MissingReturnsDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if !cfg.UI.VimMode || cfg.UI.CellWidth != DefaultCellWidth || cfg.Log.Level != "info" {
		t.Errorf("Unexpected defaults: %+v", cfg)
	}
}

func TestLoadFile_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
ui:
  vim_mode: false
  desktop_notices: true
  cell_width: 100
export:
  ics_path: /tmp/out.ics
log:
  debug_file: /tmp/monthcal.log
`
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.UI.VimMode {
		t.Error("Expected vim_mode false")
	}
	if !cfg.UI.DesktopNotices {
		t.Error("Expected desktop_notices true")
	}
	if cfg.UI.CellWidth != MaxCellWidth {
		t.Errorf("Expected cell width clamped to %d, got %d", MaxCellWidth, cfg.UI.CellWidth)
	}
	if p, _ := cfg.ICSPath(); p != "/tmp/out.ics" {
		t.Errorf("Expected /tmp/out.ics, got %s", p)
	}
	if cfg.Log.DebugFile != "/tmp/monthcal.log" || cfg.Log.Level != "info" {
		t.Errorf("Unexpected log config %+v", cfg.Log)
	}
}

func TestLoadFile_ParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("ui: [unclosed"), 0600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFile(path)
	if err == nil || !strings.Contains(err.Error(), "failed to parse config file") {
		t.Errorf("Expected parse error, got %v", err)
	}
}

func TestSaveFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := DefaultConfig()
	cfg.UI.CellWidth = 10
	cfg.Export.ICSPath = "/tmp/x.ics"

	if err := SaveFile(cfg, path); err != nil {
		t.Fatalf("SaveFile failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("Expected 0600, got %v", info.Mode().Perm())
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.UI.CellWidth != 10 || loaded.Export.ICSPath != "/tmp/x.ics" {
		t.Errorf("Unexpected loaded config %+v", loaded)
	}
}
