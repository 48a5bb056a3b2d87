package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "homestead.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing file: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("missing file config = %+v, want defaults", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, "server_url: ws://game.example:3000/replica\nplayer_name: rin\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ServerURL != "ws://game.example:3000/replica" || cfg.PlayerName != "rin" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	// Untouched keys keep their defaults
	if cfg.WindowW != Default().WindowW || !cfg.Minimap {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := writeConfig(t, "server_url: [unclosed\n")
	if _, err := Load(path); err == nil {
		t.Fatal("malformed yaml accepted")
	}
}

func TestLoadInvalidWindow(t *testing.T) {
	path := writeConfig(t, "window_w: 0\n")
	if _, err := Load(path); err == nil {
		t.Fatal("zero window width accepted")
	}
}
