package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPattern     = "glider"
	DefaultRule        = "conway"
	DefaultTheme       = "gray"
	DefaultTickMs      = 20
	DefaultPollMs      = 20
	DefaultDensity     = 0.25
	DefaultGenerations = 500
	DefaultDataDir     = ".termgrid"
	DefaultLogLevel    = "info"
)

type Config struct {
	Pattern     string      `yaml:"pattern"`
	Rule        string      `yaml:"rule"`
	Wrap        bool        `yaml:"wrap"`
	TickMs      int         `yaml:"tick_ms"`
	PollMs      int         `yaml:"poll_ms"`
	Auto        bool        `yaml:"auto"`
	Theme       string      `yaml:"theme"`
	Seed        int64       `yaml:"seed"`
	Density     float64     `yaml:"density"`
	StatusLine  bool        `yaml:"status_line"`
	Generations int         `yaml:"generations"`
	OffsetX     int         `yaml:"offset_x"`
	OffsetY     int         `yaml:"offset_y"`
	Colors      ColorConfig `yaml:"colors"`
	DataDir     string      `yaml:"data_dir"`
	LogFile     string      `yaml:"log_file"`
	LogLevel    string      `yaml:"log_level"`
}

// ColorConfig overrides theme colors. Values are "#rrggbb" or color names.
type ColorConfig struct {
	Background string `yaml:"background"`
	Alive      string `yaml:"alive"`
	Cursor     string `yaml:"cursor"`
}

func DefaultConfig() *Config {
	return &Config{
		Pattern:     DefaultPattern,
		Rule:        DefaultRule,
		Wrap:        true,
		TickMs:      DefaultTickMs,
		PollMs:      DefaultPollMs,
		Theme:       DefaultTheme,
		Seed:        1,
		Density:     DefaultDensity,
		StatusLine:  true,
		Generations: DefaultGenerations,
		OffsetX:     -1,
		OffsetY:     -1,
		DataDir:     DefaultDataDir,
		LogLevel:    DefaultLogLevel,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.TickMs <= 0 {
		return fmt.Errorf("tick_ms must be positive, got %d", c.TickMs)
	}
	if c.PollMs <= 0 {
		return fmt.Errorf("poll_ms must be positive, got %d", c.PollMs)
	}
	if c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("density must be within [0,1], got %f", c.Density)
	}
	if c.Generations < 0 {
		return fmt.Errorf("generations must not be negative, got %d", c.Generations)
	}
	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	return nil
}

// Centered reports whether the pattern should be placed in the middle.
func (c *Config) Centered() bool {
	return c.OffsetX < 0 || c.OffsetY < 0
}
