// Package config loads the optional fenboard configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all fenboard configuration.
type Config struct {
	Render RenderConfig `yaml:"render"`
}

// RenderConfig configures the board renderer.
type RenderConfig struct {
	// Glyphs selects the piece glyph set: "unicode" (default) or "ascii".
	Glyphs string `yaml:"glyphs"`

	// Color overrides; empty values keep the built-in theme.
	LightSquare string `yaml:"light_square"`
	DarkSquare  string `yaml:"dark_square"`
	WhitePiece  string `yaml:"white_piece"`
	BlackPiece  string `yaml:"black_piece"`
	Label       string `yaml:"label"`
	Highlight   string `yaml:"highlight"`
	Error       string `yaml:"error"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Render: RenderConfig{Glyphs: "unicode"},
	}
}

// Load reads a YAML config file. An empty path or a missing file yields the
// defaults; a file that exists but does not parse is an error.
func Load(path string) (Config, error) {
	var cfg = Default()
	if path == "" {
		return cfg, nil
	}

	var data, err = os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Render.Glyphs {
	case "", "unicode", "ascii":
		return nil
	}
	return fmt.Errorf("config: unknown glyph set %q", c.Render.Glyphs)
}
