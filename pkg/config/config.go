// Package config loads the demo's keypad configuration from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the demo application configuration.
type Config struct {
	// Prompts shown in the keypad header.
	MajorPrompt string `yaml:"major_prompt"`
	MinorPrompt string `yaml:"minor_prompt"`
	// Warning, when set, is shown in place of the major prompt until
	// the warning timer fires.
	Warning     string `yaml:"warning"`
	AllowCancel bool   `yaml:"allow_cancel"`

	// LogFile receives structured logs; empty disables logging.
	LogFile string `yaml:"log_file"`

	Theme ThemeConfig `yaml:"theme"`
}

// ThemeConfig overrides theme colors. Colors are "#rrggbb" strings;
// empty fields keep the default.
type ThemeConfig struct {
	Background string `yaml:"background"`
	Accent     string `yaml:"accent"`
	Warning    string `yaml:"warning"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		MajorPrompt: "Enter PIN",
		MinorPrompt: "PIN keypad",
		AllowCancel: true,
	}
}

// Load reads the config file at path, applying defaults for absent
// fields. A missing file yields the defaults without error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field formats.
func (c *Config) Validate() error {
	if c.MajorPrompt == "" {
		return fmt.Errorf("major_prompt must not be empty")
	}
	for _, field := range []struct {
		name, value string
	}{
		{"theme.background", c.Theme.Background},
		{"theme.accent", c.Theme.Accent},
		{"theme.warning", c.Theme.Warning},
	} {
		if field.value == "" {
			continue
		}
		if _, _, _, err := ParseHexColor(field.value); err != nil {
			return fmt.Errorf("%s: %w", field.name, err)
		}
	}
	return nil
}

// ParseHexColor parses a "#rrggbb" color string.
func ParseHexColor(s string) (r, g, b uint8, err error) {
	if len(s) != 7 || s[0] != '#' {
		return 0, 0, 0, fmt.Errorf("invalid color %q, want #rrggbb", s)
	}
	var rv, gv, bv int
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &rv, &gv, &bv); err != nil {
		return 0, 0, 0, fmt.Errorf("invalid color %q, want #rrggbb", s)
	}
	return uint8(rv), uint8(gv), uint8(bv), nil
}
