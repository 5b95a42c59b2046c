package config

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"
)

// Validate checks every setting. It returns an error describing every
// invalid value found, or nil if all values are valid.
func Validate(s Settings) error {
	var errs []string

	if s.StateDir == "" {
		errs = append(errs, "state_dir: must not be empty")
	}
	for key, d := range map[string]time.Duration{
		"switch_timeout":    s.SwitchTimeout,
		"configure_timeout": s.ConfigureTimeout,
		"probe_interval":    s.ProbeInterval,
	} {
		if d <= 0 {
			errs = append(errs, fmt.Sprintf("%s: must be positive, got %s", key, d))
		}
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(s.LogLevel)); err != nil {
		errs = append(errs, fmt.Sprintf("log_level: invalid value %q (allowed: debug, info, warn, error)", s.LogLevel))
	}

	if len(errs) == 0 {
		return nil
	}
	// Map iteration order is random.
	sort.Strings(errs)
	return fmt.Errorf("settings validation failed:\n  %s", strings.Join(errs, "\n  "))
}
