package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the editor configuration.
type Config struct {
	Editor   Editor   `toml:"editor"`
	Scramble Scramble `toml:"scramble"`
	Export   Export   `toml:"export"`
}

// Editor configures editing behavior.
type Editor struct {
	// BulletGlyph is the glyph inserted for new bullet markers.
	// Must be one of the recognized glyphs; others fall back to "-".
	BulletGlyph string `toml:"bullet_glyph"`

	// TabWidth is the number of spaces inserted for Tab.
	TabWidth int `toml:"tab_width"`
}

// Scramble configures the hidden rendering.
type Scramble struct {
	// RevealOnStart shows content in the clear when the editor opens.
	RevealOnStart bool `toml:"reveal_on_start"`
}

// Export configures the save target.
type Export struct {
	// Directory receives saved files. Empty means the working
	// directory.
	Directory string `toml:"directory"`

	// Filename is the fixed save target. A .txt extension is
	// enforced at save time.
	Filename string `toml:"filename"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Editor: Editor{
			BulletGlyph: "-",
			TabWidth:    4,
		},
		Export: Export{
			Filename: "cyphernote.txt",
		},
	}
}

// DefaultPath returns the user config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "cyphernote", "config.toml")
}

// Load reads configuration from path, applied over the defaults.
// A missing file is not an error: defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config file %s: %w", path, err)
	}

	cfg.normalize()
	return cfg, nil
}

// normalize replaces out-of-range values with defaults.
func (c *Config) normalize() {
	switch c.Editor.BulletGlyph {
	case "-", "*", "•":
	default:
		c.Editor.BulletGlyph = "-"
	}
	if c.Editor.TabWidth <= 0 {
		c.Editor.TabWidth = 4
	}
	if c.Export.Filename == "" {
		c.Export.Filename = "cyphernote.txt"
	}
}
