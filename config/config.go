// Package config loads and validates the bootstrap configuration for a
// runegrid application.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"

	"github.com/runegrid/runegrid/core"
	"github.com/runegrid/runegrid/engine"
	"github.com/runegrid/runegrid/render"
)

// Config is the full bootstrap configuration.
type Config struct {
	Game     GameConfig     `toml:"game" yaml:"game"`
	Renderer RendererConfig `toml:"renderer" yaml:"renderer"`
	Logging  LoggingConfig  `toml:"logging" yaml:"logging"`
}

// GameConfig configures the loop driver.
type GameConfig struct {
	PressEscapeToQuit bool `toml:"press_escape_to_quit" yaml:"press_escape_to_quit"`
	MaxFrameRate      int  `toml:"max_frame_rate" yaml:"max_frame_rate"`
}

// RendererConfig configures the compositor. Colors accept tcell color names
// ("red", "papayawhip") or #rrggbb; empty means unset.
type RendererConfig struct {
	Width                int    `toml:"width" yaml:"width"`
	Height               int    `toml:"height" yaml:"height"`
	IncludeDefaultCamera bool   `toml:"include_default_camera" yaml:"include_default_camera"`
	DefaultForeground    string `toml:"default_foreground" yaml:"default_foreground"`
	DefaultBackground    string `toml:"default_background" yaml:"default_background"`
}

// LoggingConfig configures the zap logger. A fullscreen terminal app must
// never log to stdout while running, so Path defaults to a file.
type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"` // "json" or "console"
	Path   string `toml:"path" yaml:"path"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Game: GameConfig{
			PressEscapeToQuit: true,
			MaxFrameRate:      60,
		},
		Renderer: RendererConfig{
			Width:                80,
			Height:               24,
			IncludeDefaultCamera: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Path:   "runegrid.log",
		},
	}
}

// Load reads a configuration file, .toml or .yaml/.yml by extension, on top
// of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("config %s: unsupported extension %q", path, ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations the engine cannot run with.
func (c *Config) Validate() error {
	if c.Game.MaxFrameRate < 0 {
		return fmt.Errorf("config: max_frame_rate must be non-negative, got %d", c.Game.MaxFrameRate)
	}
	if c.Renderer.Width <= 0 || c.Renderer.Height <= 0 {
		return fmt.Errorf("config: screen resolution %dx%d is not positive",
			c.Renderer.Width, c.Renderer.Height)
	}
	if _, err := parseColor(c.Renderer.DefaultForeground); err != nil {
		return fmt.Errorf("config: default_foreground: %w", err)
	}
	if _, err := parseColor(c.Renderer.DefaultBackground); err != nil {
		return fmt.Errorf("config: default_background: %w", err)
	}
	switch c.Logging.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("config: logging format %q is not json or console", c.Logging.Format)
	}
	return nil
}

// GameOptions converts the game section into engine options.
func (c *Config) GameOptions() engine.Options {
	return engine.Options{
		PressEscapeToQuit: c.Game.PressEscapeToQuit,
		MaxFrameRate:      c.Game.MaxFrameRate,
	}
}

// RenderOptions converts the renderer section into compositor options.
func (c *Config) RenderOptions() render.Options {
	fg, _ := parseColor(c.Renderer.DefaultForeground)
	bg, _ := parseColor(c.Renderer.DefaultBackground)
	return render.Options{
		Resolution:           core.Dimensions{Width: c.Renderer.Width, Height: c.Renderer.Height},
		IncludeDefaultCamera: c.Renderer.IncludeDefaultCamera,
		DefaultForeground:    fg,
		DefaultBackground:    bg,
	}
}

// parseColor maps a config color string to a tcell color. Empty stays unset.
func parseColor(name string) (tcell.Color, error) {
	if name == "" {
		return tcell.ColorDefault, nil
	}
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault {
		return tcell.ColorDefault, fmt.Errorf("unknown color %q", name)
	}
	return c, nil
}
