package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds user defaults loaded from the config file. Every field maps to
// a flag; flags given on the command line win over config values.
type Config struct {
	// Context is the number of unchanged lines shown around each change.
	Context int `toml:"context"`

	// Color is one of "auto", "always", or "never".
	Color string `toml:"color"`

	// Highlight enables syntax highlighting of line content.
	Highlight bool `toml:"highlight"`

	// Style is the chroma style name used when Highlight is on.
	Style string `toml:"style"`

	// MaxCost caps the alignment work (old lines times new lines). 0 means
	// unlimited.
	MaxCost int `toml:"max-cost"`
}

func defaultConfig() Config {
	return Config{
		Context: 3,
		Color:   "auto",
		Style:   "monokai",
	}
}

// configPath returns the user config file location. The LINEDIFF_CONFIG
// environment variable overrides it (used by tests, handy for scripts).
func configPath() (string, error) {
	if p := os.Getenv("LINEDIFF_CONFIG"); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "linediff", "config.toml"), nil
}

// loadConfig reads the config file, filling in defaults. A missing file is
// not an error; a malformed one is.
func loadConfig() (Config, error) {
	cfg := defaultConfig()

	path, err := configPath()
	if err != nil {
		// No resolvable config dir (e.g. HOME unset). Run on defaults.
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	if err := validateConfig(cfg); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func validateConfig(cfg Config) error {
	switch cfg.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("color must be auto, always, or never (got %q)", cfg.Color)
	}
	if cfg.Context < 0 {
		return fmt.Errorf("context must be >= 0 (got %d)", cfg.Context)
	}
	if cfg.MaxCost < 0 {
		return fmt.Errorf("max-cost must be >= 0 (got %d)", cfg.MaxCost)
	}
	return nil
}
