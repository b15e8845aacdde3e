package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
)

// envPrefix prefixes environment overrides, e.g. SRCVIEW_TAB_WIDTH.
const envPrefix = "SRCVIEW_"

// Config configures the demo.
type Config struct {
	TabWidth int      `toml:"tab_width"`
	Color    string   `toml:"color"` // auto, none, ansi, ansi256, truecolor
	LogFile  string   `toml:"log_file"`
	LogLevel string   `toml:"log_level"`
	Keywords []string `toml:"keywords"`
}

func DefaultConfig() Config {
	return Config{
		TabWidth: 4,
		Color:    "auto",
		LogLevel: "info",
		Keywords: []string{"let", "fn", "if", "else", "return", "for", "while"},
	}
}

// LoadConfig reads path over the defaults. A missing file is not an error.
// An empty path skips the file and only applies the environment.
func LoadConfig(path string, lookupEnv func(string) (string, bool)) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
		default:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
			}
		}
	}
	if err := cfg.applyEnv(lookupEnv); err != nil {
		return Config{}, err
	}
	return cfg, cfg.validate()
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if lookup == nil {
		return nil
	}
	if v, ok := lookup(envPrefix + "TAB_WIDTH"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sTAB_WIDTH: %w", envPrefix, err)
		}
		c.TabWidth = n
	}
	if v, ok := lookup(envPrefix + "COLOR"); ok {
		c.Color = v
	}
	if v, ok := lookup(envPrefix + "LOG_FILE"); ok {
		c.LogFile = v
	}
	if v, ok := lookup(envPrefix + "LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := lookup(envPrefix + "KEYWORDS"); ok {
		c.Keywords = strings.Fields(strings.ReplaceAll(v, ",", " "))
	}
	return nil
}

func (c Config) validate() error {
	if c.TabWidth <= 0 {
		return fmt.Errorf("tab_width must be positive, got %d", c.TabWidth)
	}
	if _, err := c.colorProfile(); err != nil {
		return err
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// colorProfile maps Color to a termenv profile, or -1 for "auto".
func (c Config) colorProfile() (termenv.Profile, error) {
	switch strings.ToLower(c.Color) {
	case "", "auto":
		return -1, nil
	case "none":
		return termenv.Ascii, nil
	case "ansi":
		return termenv.ANSI, nil
	case "ansi256":
		return termenv.ANSI256, nil
	case "truecolor":
		return termenv.TrueColor, nil
	default:
		return 0, fmt.Errorf("color: unknown profile %q", c.Color)
	}
}

// renderer returns a lipgloss renderer honoring Color.
func (c Config) renderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(os.Stdout)
	if p, err := c.colorProfile(); err == nil && p >= 0 {
		r.SetColorProfile(p)
	}
	return r
}
