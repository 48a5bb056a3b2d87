package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the client configuration loaded at startup. Gameplay tuning
// lives in parameter; this covers only deployment and preference knobs
type Config struct {
	// ServerURL is the replication service websocket endpoint
	ServerURL string `yaml:"server_url"`

	// PlayerName is sent in the hello handshake
	PlayerName string `yaml:"player_name"`

	// Window size in pixels
	WindowW int `yaml:"window_w"`
	WindowH int `yaml:"window_h"`

	// AssetDir is the sprite directory
	AssetDir string `yaml:"asset_dir"`

	// Minimap enables the corner overlay
	Minimap bool `yaml:"minimap"`

	// Audio enables the campfire crackle loop
	Audio bool `yaml:"audio"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		ServerURL:  "ws://localhost:3000/replica",
		PlayerName: "wanderer",
		WindowW:    1280,
		WindowH:    720,
		AssetDir:   "asset",
		Minimap:    true,
		Audio:      true,
	}
}

// Load reads path over the defaults. A missing file is not an error; a
// malformed one is
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if cfg.WindowW <= 0 || cfg.WindowH <= 0 {
		return cfg, fmt.Errorf("invalid window size %dx%d", cfg.WindowW, cfg.WindowH)
	}
	return cfg, nil
}
