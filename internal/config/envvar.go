package config

import "os"

// Environment variable names for my-reboot settings.
const (
	EnvConfig         = "MY_REBOOT_CONFIG"    // Path to the settings file
	EnvStateDir       = "MY_REBOOT_STATE_DIR" // Override state_dir
	EnvLogLevel       = "MY_REBOOT_LOG_LEVEL" // Override log_level
	EnvNoRebootAction = "NO_REBOOT_ACTION"    // Any value turns dry_run on
)

// ApplyEnvOverrides applies the environment variables to s in memory.
func ApplyEnvOverrides(s *Settings) {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		s.StateDir = dir
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		s.LogLevel = level
	}
	// Only presence matters, an empty value also counts.
	if _, ok := os.LookupEnv(EnvNoRebootAction); ok {
		s.DryRun = true
	}
}
