package cmd

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"my-reboot/internal/config"
	"my-reboot/internal/configs"
	"my-reboot/internal/dialog"
	"my-reboot/internal/hostos"
	"my-reboot/internal/kvstorage/grubenv"
	"my-reboot/internal/kvstorage/properties"
	"my-reboot/internal/options"
	"my-reboot/internal/state"
	"my-reboot/internal/text"
)

const (
	monitorID = `MONITOR\GSM5B09`
	tvID      = `MONITOR\SAM0F99`
)

var testConfigs = map[string]string{
	"windows.grubEntry":        "Windows-entry",
	"linux.grubEntry":          "Linux-entry",
	"monitor.deviceId":         monitorID,
	"tv.deviceId":              tvID,
	"monitor.displaySwitchArg": "/internal",
	"tv.displaySwitchArg":      "/external",
}

type fakeSwitcher struct {
	active   string
	switches []string
}

func (s *fakeSwitcher) ActiveDisplayID() (string, error) { return s.active, nil }

func (s *fakeSwitcher) Switch(ctx context.Context, arg string, timeout time.Duration) (bool, error) {
	s.switches = append(s.switches, arg)
	before := s.active
	switch arg {
	case "/internal":
		s.active = monitorID
	case "/external":
		s.active = tvID
	}
	return s.active != before, nil
}

type fakeActuator struct {
	calls []string
}

func (a *fakeActuator) Reboot(ctx context.Context) error {
	a.calls = append(a.calls, "reboot")
	return nil
}

func (a *fakeActuator) Shutdown(ctx context.Context) error {
	a.calls = append(a.calls, "shutdown")
	return nil
}

// testEnv is an App over a temp state dir with fake host collaborators.
type testEnv struct {
	app      *App
	dir      string
	out      *bytes.Buffer
	actuator *fakeActuator
	switcher *fakeSwitcher
}

// newTestEnv creates a state dir holding an empty grubenv and the test
// configs. On Windows the host gets a switcher showing the monitor.
func newTestEnv(t *testing.T, system options.OperatingSystem) *testEnv {
	t.Helper()
	dir := t.TempDir()
	block, err := grubenv.Encode(nil)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, state.GrubenvFilename), block, 0o644); err != nil {
		t.Fatalf("writing grubenv: %v", err)
	}
	if err := properties.New(filepath.Join(dir, configs.Filename), testConfigs).Save(); err != nil {
		t.Fatalf("writing configs: %v", err)
	}

	settings := config.Default()
	settings.StateDir = dir

	env := &testEnv{
		dir:      dir,
		out:      &bytes.Buffer{},
		actuator: &fakeActuator{},
	}
	host := hostos.Host{OS: system, StateDir: dir, Actuator: env.actuator}
	if system == options.Windows {
		env.switcher = &fakeSwitcher{active: monitorID}
		host.Switcher = env.switcher
		host.SwitchArgs = [2]string{"/internal", "/external"}
	}
	env.app = &App{
		Host:     host,
		Settings: settings,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Painter:  text.PlainPainter(),
		Dialog: func(ctx context.Context, m dialog.Model) (dialog.Outcome, bool, error) {
			t.Fatal("unexpected dialog")
			return dialog.Outcome{}, false, nil
		},
		In:  strings.NewReader(""),
		Out: env.out,
		Err: &bytes.Buffer{},
	}
	return env
}

// run executes the root command with args.
func (e *testEnv) run(args ...string) error {
	rootCmd := newRootCmd(NewTestProvider(e.app))
	rootCmd.SetArgs(args)
	rootCmd.SetOut(e.out)
	rootCmd.SetErr(e.app.Err)
	return rootCmd.Execute()
}

// grubenv returns the entries of the boot block.
func (e *testEnv) grubenv(t *testing.T) map[string]string {
	t.Helper()
	s, err := grubenv.Load(filepath.Join(e.dir, state.GrubenvFilename))
	if err != nil {
		t.Fatalf("grubenv.Load: %v", err)
	}
	return s.All()
}

// optionsFile returns the entries of the options file.
func (e *testEnv) optionsFile(t *testing.T) map[string]string {
	t.Helper()
	s, err := properties.Load(filepath.Join(e.dir, state.OptionsFilename), false, nil)
	if err != nil {
		t.Fatalf("properties.Load: %v", err)
	}
	return s.All()
}

func writeConfigs(dir string, content map[string]string) error {
	return properties.New(filepath.Join(dir, configs.Filename), content).Save()
}

// cancelDialog records that the dialog was shown and cancels it.
func cancelDialog(shown *bool) DialogRunner {
	return func(ctx context.Context, m dialog.Model) (dialog.Outcome, bool, error) {
		*shown = true
		return dialog.Outcome{}, false, nil
	}
}
