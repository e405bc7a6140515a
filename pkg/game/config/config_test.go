package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "none", "config.json")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ScrollSpeed != DefaultScrollSpeed || cfg.Backend != DefaultBackend || !cfg.ShowHUD {
		t.Errorf("Load defaults = %+v", cfg)
	}
	if cfg.Path() != path {
		t.Errorf("Path() = %q, want %q", cfg.Path(), path)
	}
}

func TestSetScrollSpeed_Persists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuberoad", "config.json")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := cfg.SetScrollSpeed(24); err != nil {
		t.Fatalf("SetScrollSpeed: %v", err)
	}

	again, err := Load(path)
	if err != nil {
		t.Fatalf("Load after save: %v", err)
	}
	if again.Speed() != 24 {
		t.Errorf("reloaded speed = %v, want 24", again.Speed())
	}
}

func TestSetScrollSpeed_Clamps(t *testing.T) {
	cfg := Default()
	tests := []struct{ in, want float64 }{
		{-5, MinScrollSpeed},
		{MaxScrollSpeed + 1, MaxScrollSpeed},
		{8, 8},
	}
	for _, tt := range tests {
		if err := cfg.SetScrollSpeed(tt.in); err != nil {
			t.Fatalf("SetScrollSpeed: %v", err)
		}
		if cfg.Speed() != tt.want {
			t.Errorf("SetScrollSpeed(%v) stored %v, want %v", tt.in, cfg.Speed(), tt.want)
		}
	}
}

func TestLoad_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err == nil {
		t.Fatal("Load accepted malformed JSON")
	}
	if cfg.ScrollSpeed != DefaultScrollSpeed {
		t.Errorf("fallback speed = %v, want default", cfg.ScrollSpeed)
	}
}

func TestLoad_KeyBindings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"scrollSpeed": 8, "keyBindings": {"Pause": "b"}}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := cfg.KeyBindings["Pause"]; got != "b" {
		t.Errorf("KeyBindings[Pause] = %q, want b", got)
	}
	if cfg.Backend != DefaultBackend {
		t.Errorf("absent field Backend = %q, want default", cfg.Backend)
	}
}
