// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Clock  ClockConfig  `toml:"clock"`
	Colors ColorsConfig `toml:"colors"`
}

// ClockConfig maps display settings.
type ClockConfig struct {
	Theme     *string `toml:"theme"`
	Seconds   *bool   `toml:"seconds"`
	Smooth    *bool   `toml:"smooth"`
	Date      *bool   `toml:"date"`
	Dial      *bool   `toml:"dial"`
	Divisions *bool   `toml:"divisions"`
	FrameMs   *int    `toml:"frame-ms"`
}

// ColorsConfig overrides individual theme colors.
type ColorsConfig struct {
	Ticks   *string `toml:"ticks"`
	Pressed *string `toml:"pressed"`
	Hour    *string `toml:"hour"`
	Minute  *string `toml:"minute"`
	Second  *string `toml:"second"`
	Dial    *string `toml:"dial"`
	Date    *string `toml:"date"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}

// DecodeConfig parses TOML text, e.g. the default template.
func DecodeConfig(data string) (FileConfig, error) {
	var cfg FileConfig
	if _, err := toml.Decode(data, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
