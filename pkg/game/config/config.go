// Package config holds user preferences persisted between runs.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// Default preferences and the reference window size
const (
	DefaultScrollSpeed = 16.0
	DefaultBackend     = "ebiten"
	DefaultLanguage    = "en"
	DefaultWidth       = 640
	DefaultHeight      = 480

	MinScrollSpeed = 0.0
	MaxScrollSpeed = 128.0
)

// Config is the persisted preference set
type Config struct {
	ScrollSpeed float64 `json:"scrollSpeed"`
	Backend     string  `json:"backend"`
	Language    string  `json:"language"`
	ShowHUD     bool    `json:"showHud"`

	// KeyBindings maps action names (e.g. "Pause") to a replacement key code
	KeyBindings map[string]string `json:"keyBindings,omitempty"`

	path string
	mu   sync.Mutex
}

var (
	current     *Config
	currentOnce sync.Once
)

// Default returns a config with default values that is not backed by a file
func Default() *Config {
	return &Config{
		ScrollSpeed: DefaultScrollSpeed,
		Backend:     DefaultBackend,
		Language:    DefaultLanguage,
		ShowHUD:     true,
	}
}

// DefaultPath returns the preferences file location in the user config dir
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "tuberoad", "config.json"), nil
}

// Load reads the config at path. A missing file yields defaults bound to path.
func Load(path string) (*Config, error) {
	cfg := Default()
	cfg.path = path

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.ScrollSpeed = clampSpeed(cfg.ScrollSpeed)
	return cfg, nil
}

// Current returns the process-wide config, loading it on first use.
// Load failures are logged and the defaults are used instead.
func Current() *Config {
	currentOnce.Do(func() {
		path, err := DefaultPath()
		if err != nil {
			log.Printf("Warning: no config directory, preferences will not be saved: %v", err)
			current = Default()
			return
		}
		cfg, err := Load(path)
		if err != nil {
			log.Printf("Warning: could not load preferences: %v", err)
		}
		cfg.path = path
		current = cfg
	})
	return current
}

// Path returns the file the config saves to, or "" when it is not file-backed
func (c *Config) Path() string {
	return c.path
}

// Speed returns the scroll speed
func (c *Config) Speed() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ScrollSpeed
}

// SetScrollSpeed stores a new autoscroll speed (pixels per tick) and saves
func (c *Config) SetScrollSpeed(speed float64) error {
	c.mu.Lock()
	c.ScrollSpeed = clampSpeed(speed)
	c.mu.Unlock()
	return c.Save()
}

// SetShowHUD stores the HUD visibility and saves
func (c *Config) SetShowHUD(show bool) error {
	c.mu.Lock()
	c.ShowHUD = show
	c.mu.Unlock()
	return c.Save()
}

// Save writes the config to its file. Configs without a file are not saved.
func (c *Config) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.path == "" {
		return nil
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", c.path, err)
	}
	return nil
}

func clampSpeed(s float64) float64 {
	if !(s >= MinScrollSpeed) {
		return MinScrollSpeed
	}
	if s > MaxScrollSpeed {
		return MaxScrollSpeed
	}
	return s
}
