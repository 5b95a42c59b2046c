package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Paths captures where the settings came from.
type Paths struct {
	// SettingsFile is empty when only defaults and env vars apply.
	SettingsFile string
}

// Resolve builds the effective settings. The file comes from flagPath or,
// when empty, from MY_REBOOT_CONFIG; a file named explicitly must exist.
// Environment overrides are applied last, then the result is validated.
func Resolve(flagPath string) (Paths, Settings, error) {
	path := flagPath
	if path == "" {
		path = os.Getenv(EnvConfig)
	}

	s := Default()
	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return Paths{}, Settings{}, fmt.Errorf("settings file %s not found: %w", path, err)
			}
			return Paths{}, Settings{}, err
		}
		s = loaded
	}

	ApplyEnvOverrides(&s)
	if err := Validate(s); err != nil {
		return Paths{}, Settings{}, err
	}
	return Paths{SettingsFile: path}, s, nil
}
