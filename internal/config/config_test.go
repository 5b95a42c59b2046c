package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"my-reboot/internal/hostos"
)

func writeSettings(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing settings: %v", err)
	}
	return path
}

// unsetenv removes key for the duration of the test.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestDefault(t *testing.T) {
	s := Default()
	if s.StateDir != hostos.DefaultStateDir {
		t.Errorf("StateDir = %q", s.StateDir)
	}
	if s.GrubCfg != "/boot/grub/grub.cfg" {
		t.Errorf("GrubCfg = %q", s.GrubCfg)
	}
	if s.SwitchTimeout != 10*time.Second || s.ConfigureTimeout != 5*time.Second || s.ProbeInterval != time.Second {
		t.Errorf("timeouts = %v, %v, %v", s.SwitchTimeout, s.ConfigureTimeout, s.ProbeInterval)
	}
	if s.DryRun {
		t.Error("DryRun should default to false")
	}
	if err := Validate(s); err != nil {
		t.Errorf("defaults should be valid: %v", err)
	}
}

func TestLoad_YAML(t *testing.T) {
	path := writeSettings(t, "my-reboot.yaml", `
state_dir: /tmp/state
switch_timeout: 3s
dry_run: true
log_level: debug
`)
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.StateDir != "/tmp/state" || s.SwitchTimeout != 3*time.Second || !s.DryRun {
		t.Errorf("settings = %+v", s)
	}
	// Keys not in the file keep their defaults.
	if s.ConfigureTimeout != 5*time.Second {
		t.Errorf("ConfigureTimeout = %v, want default", s.ConfigureTimeout)
	}
	if s.Level() != slog.LevelDebug {
		t.Errorf("Level = %v, want debug", s.Level())
	}
}

func TestLoad_TOML(t *testing.T) {
	path := writeSettings(t, "my-reboot.toml", `
grub_cfg = "/efi/grub/grub.cfg"
probe_interval = "500ms"
log_level = "warn"
`)
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.GrubCfg != "/efi/grub/grub.cfg" || s.ProbeInterval != 500*time.Millisecond {
		t.Errorf("settings = %+v", s)
	}
	if s.Level() != slog.LevelWarn {
		t.Errorf("Level = %v, want warn", s.Level())
	}
}

func TestLoad_Invalid(t *testing.T) {
	path := writeSettings(t, "my-reboot.yaml", "state_dir: [unclosed\n")
	if _, err := Load(path); err == nil {
		t.Error("Load should fail on malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	s := Default()
	s.StateDir = ""
	s.SwitchTimeout = 0
	s.ProbeInterval = -time.Second
	s.LogLevel = "loud"

	err := Validate(s)
	if err == nil {
		t.Fatal("Validate should fail")
	}
	for _, want := range []string{"state_dir", "switch_timeout", "probe_interval", `log_level: invalid value "loud"`} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %s", err, want)
		}
	}
	if strings.Contains(err.Error(), "configure_timeout") {
		t.Errorf("error %q mentions a valid key", err)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv(EnvStateDir, "/env/state")
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvNoRebootAction, "")

	s := Default()
	ApplyEnvOverrides(&s)

	if s.StateDir != "/env/state" {
		t.Errorf("StateDir = %q", s.StateDir)
	}
	if s.LogLevel != "error" {
		t.Errorf("LogLevel = %q", s.LogLevel)
	}
	if !s.DryRun {
		t.Error("NO_REBOOT_ACTION, even empty, should turn on dry run")
	}
}

func TestApplyEnvOverrides_NoOverride(t *testing.T) {
	t.Setenv(EnvStateDir, "")
	unsetenv(t, EnvNoRebootAction)

	s := Default()
	ApplyEnvOverrides(&s)
	if s.StateDir != hostos.DefaultStateDir {
		t.Errorf("StateDir = %q, should not change", s.StateDir)
	}
	if s.DryRun {
		t.Error("DryRun should stay off")
	}
}

func TestResolve(t *testing.T) {
	unsetenv(t, EnvNoRebootAction)
	path := writeSettings(t, "my-reboot.yaml", "state_dir: /from/file\n")

	t.Run("flag", func(t *testing.T) {
		paths, s, err := Resolve(path)
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		if paths.SettingsFile != path || s.StateDir != "/from/file" {
			t.Errorf("Resolve = %+v, %+v", paths, s)
		}
	})

	t.Run("env", func(t *testing.T) {
		t.Setenv(EnvConfig, path)
		t.Setenv(EnvStateDir, "/from/env")
		_, s, err := Resolve("")
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		if s.StateDir != "/from/env" {
			t.Errorf("StateDir = %q, env should win over the file", s.StateDir)
		}
	})

	t.Run("defaults", func(t *testing.T) {
		t.Setenv(EnvConfig, "")
		paths, s, err := Resolve("")
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		if paths.SettingsFile != "" || s.StateDir == "" {
			t.Errorf("Resolve = %+v, %+v", paths, s)
		}
	})

	t.Run("missing", func(t *testing.T) {
		if _, _, err := Resolve(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Error("a named settings file must exist")
		}
	})

	t.Run("invalid", func(t *testing.T) {
		bad := writeSettings(t, "bad.yaml", "switch_timeout: 0s\n")
		if _, _, err := Resolve(bad); err == nil {
			t.Error("Resolve should validate")
		}
	})
}
