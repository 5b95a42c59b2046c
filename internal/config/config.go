// Package config handles my-reboot settings loading and defaults.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"my-reboot/internal/configure"
	"my-reboot/internal/hostos"
	"my-reboot/internal/state"
)

// Settings represents the contents of my-reboot.yaml (or .toml). Every
// field is optional.
type Settings struct {
	StateDir         string        `yaml:"state_dir" toml:"state_dir"`
	GrubCfg          string        `yaml:"grub_cfg" toml:"grub_cfg"`
	SwitchTimeout    time.Duration `yaml:"switch_timeout" toml:"switch_timeout"`
	ConfigureTimeout time.Duration `yaml:"configure_timeout" toml:"configure_timeout"`
	ProbeInterval    time.Duration `yaml:"probe_interval" toml:"probe_interval"`
	DryRun           bool          `yaml:"dry_run" toml:"dry_run"`
	LogLevel         string        `yaml:"log_level" toml:"log_level"`
}

// Default returns the default settings for the host the binary runs on.
func Default() Settings {
	return Settings{
		StateDir:         hostos.DefaultStateDir,
		GrubCfg:          configure.DefaultGrubCfg,
		SwitchTimeout:    state.DefaultSwitchTimeout,
		ConfigureTimeout: configure.DefaultTimeout,
		ProbeInterval:    hostos.DefaultProbeInterval,
		LogLevel:         "info",
	}
}

// Load reads the settings file at path over the defaults. The format is
// chosen by extension: .toml is TOML, anything else YAML.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, err
	}

	s := Default()
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(data, &s); err != nil {
			return Settings{}, fmt.Errorf("parsing settings %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &s); err != nil {
			return Settings{}, fmt.Errorf("parsing settings %s: %w", path, err)
		}
	}
	return s, nil
}

// Level returns the parsed log level. Call Validate first.
func (s Settings) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
