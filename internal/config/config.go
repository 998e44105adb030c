// Package config holds the settings for the interactive shell. Settings are
// read from an optional TOML file; every field has a default so the shell
// works without any configuration at all.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config represents the shell configuration.
type Config struct {
	// Prompt is printed before each input line in interactive mode.
	Prompt string `toml:"prompt"`
	// NoColor disables styled output.
	NoColor bool `toml:"no_color"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Prompt:  "> ",
		NoColor: false,
	}
}

// Load reads the configuration from the TOML file at the given path, filling
// unset fields with their defaults. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("load config %q: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) != 0 {
		return nil, fmt.Errorf("load config %q: unknown key %q", path, undecoded[0])
	}
	return cfg, nil
}
