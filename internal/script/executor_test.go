package script

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"my-reboot/internal/configs"
	"my-reboot/internal/hostos"
	"my-reboot/internal/kvstorage/grubenv"
	"my-reboot/internal/kvstorage/properties"
	"my-reboot/internal/options"
	"my-reboot/internal/state"
	"my-reboot/internal/text"
)

var deviceIDs = map[string]string{
	"/internal": "MONITOR-ID",
	"/external": "TV-ID",
}

type fakeSwitcher struct {
	active   string
	switches []string
}

func (s *fakeSwitcher) ActiveDisplayID() (string, error) { return s.active, nil }

func (s *fakeSwitcher) Switch(ctx context.Context, arg string, timeout time.Duration) (bool, error) {
	s.switches = append(s.switches, arg)
	before := s.active
	s.active = deviceIDs[arg]
	return s.active != before, nil
}

type fakeActuator struct {
	calls []string
	err   error
}

func (a *fakeActuator) Reboot(ctx context.Context) error {
	a.calls = append(a.calls, "reboot")
	return a.err
}

func (a *fakeActuator) Shutdown(ctx context.Context) error {
	a.calls = append(a.calls, "shutdown")
	return a.err
}

type fixture struct {
	dir      string
	out      bytes.Buffer
	switcher *fakeSwitcher
	actuator *fakeActuator
	executor *Executor
}

// newFixture prepares a configured state dir. A nil switcher models a
// host without display switching.
func newFixture(t *testing.T, switcher *fakeSwitcher) *fixture {
	t.Helper()
	f := &fixture{dir: t.TempDir(), switcher: switcher, actuator: &fakeActuator{}}

	block, err := grubenv.Encode(nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(f.dir, state.GrubenvFilename), block, 0o644); err != nil {
		t.Fatal(err)
	}
	err = properties.New(filepath.Join(f.dir, configs.Filename), map[string]string{
		"windows.grubEntry":        "Windows-entry",
		"linux.grubEntry":          "Linux-entry",
		"monitor.deviceId":         "MONITOR-ID",
		"tv.deviceId":              "TV-ID",
		"monitor.displaySwitchArg": "/internal",
		"tv.displaySwitchArg":      "/external",
	}).Save()
	if err != nil {
		t.Fatal(err)
	}

	var s hostos.DisplaySwitcher
	if switcher != nil {
		s = switcher
	}
	provider, err := state.Open(f.dir, s, nil)
	if err != nil {
		t.Fatalf("state.Open: %v", err)
	}
	f.executor = &Executor{
		Provider: provider,
		Actuator: f.actuator,
		Out:      &f.out,
		Painter:  text.PlainPainter(),
	}
	return f
}

func (f *fixture) run(t *testing.T, args ...string) error {
	t.Helper()
	s, ok, err := Parse(args)
	if err != nil || !ok {
		t.Fatalf("Parse(%q) = %v, %v", args, ok, err)
	}
	return f.executor.Execute(context.Background(), s)
}

func TestExecute_BootSettings(t *testing.T) {
	f := newFixture(t, nil)

	if err := f.run(t, "os:windows", "display:tv"); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	want := "Sistema operacional a ser iniciado na próxima inicialização do computador foi atualizado para Windows.\n" +
		"Tela a ser usada na próxima inicialização do Windows foi atualizada para TV.\n"
	if f.out.String() != want {
		t.Errorf("output = %q, want %q", f.out.String(), want)
	}

	reopened, err := state.Open(f.dir, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	s, err := reopened.State()
	if err != nil {
		t.Fatal(err)
	}
	if s.NextBootOperatingSystem == nil || *s.NextBootOperatingSystem != options.Windows {
		t.Errorf("next OS = %v", s.NextBootOperatingSystem)
	}
	if s.NextWindowsBootDisplay == nil || *s.NextWindowsBootDisplay != options.TV {
		t.Errorf("next display = %v", s.NextWindowsBootDisplay)
	}

	block, _ := os.ReadFile(filepath.Join(f.dir, state.GrubenvFilename))
	if len(block) != grubenv.Size {
		t.Errorf("grubenv size = %d", len(block))
	}
}

func TestExecute_Unset(t *testing.T) {
	f := newFixture(t, nil)
	if err := f.run(t, "linux", "monitor"); err != nil {
		t.Fatal(err)
	}
	f.out.Reset()

	if err := f.run(t, "os:unset", "display:unset"); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(f.out.String(), "foi atualizado para indefinido.") ||
		!strings.Contains(f.out.String(), "foi atualizada para indefinida.") {
		t.Errorf("output = %q", f.out.String())
	}
	reopened, _ := state.Open(f.dir, nil, nil)
	if os, _ := reopened.NextBootOperatingSystem(); os != nil {
		t.Errorf("next OS = %v, want unset", *os)
	}
	if d := reopened.NextWindowsBootDisplay(); d != nil {
		t.Errorf("next display = %v, want unset", *d)
	}
}

func TestExecute_SwitchOther(t *testing.T) {
	f := newFixture(t, &fakeSwitcher{active: "MONITOR-ID"})

	if err := f.run(t, "switch"); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got := f.switcher.switches; len(got) != 1 || got[0] != "/external" {
		t.Errorf("switches = %v", got)
	}
	if f.out.String() != "Trocando de tela para TV\n" {
		t.Errorf("output = %q", f.out.String())
	}
}

func TestExecute_SwitchToCurrent(t *testing.T) {
	f := newFixture(t, &fakeSwitcher{active: "TV-ID"})

	if err := f.run(t, "switch:tv"); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(f.switcher.switches) != 0 {
		t.Errorf("switches = %v, want none", f.switcher.switches)
	}
	if f.out.String() != "TV já é a tela atual\n" {
		t.Errorf("output = %q", f.out.String())
	}
}

func TestExecute_SwitchSavedUnset(t *testing.T) {
	f := newFixture(t, &fakeSwitcher{active: "MONITOR-ID"})

	if err := f.run(t, "switch:saved"); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(f.switcher.switches) != 0 {
		t.Errorf("switches = %v, want none", f.switcher.switches)
	}
	want := "A tela a ser usada na próxima inicialização do Windows é indefinida\n"
	if f.out.String() != want {
		t.Errorf("output = %q, want %q", f.out.String(), want)
	}
	if _, err := os.Stat(filepath.Join(f.dir, state.OptionsFilename)); !errors.Is(err, os.ErrNotExist) {
		t.Error("state should be left unchanged")
	}
}

func TestExecute_SwitchSavedIsCurrent(t *testing.T) {
	f := newFixture(t, &fakeSwitcher{active: "TV-ID"})
	if err := f.executor.Provider.SetNextWindowsBootDisplay(options.TV); err != nil {
		t.Fatal(err)
	}

	if err := f.run(t, "switch:saved"); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(f.switcher.switches) != 0 {
		t.Errorf("switches = %v, want none", f.switcher.switches)
	}
	if !strings.HasSuffix(f.out.String(), "é TV, que já é a tela atual\n") {
		t.Errorf("output = %q", f.out.String())
	}
	if d := f.executor.Provider.NextWindowsBootDisplay(); d == nil {
		t.Error("the saved display should be kept")
	}
}

func TestExecute_SwitchSavedConsumesPreference(t *testing.T) {
	f := newFixture(t, &fakeSwitcher{active: "MONITOR-ID"})
	if err := f.executor.Provider.SetNextWindowsBootDisplay(options.TV); err != nil {
		t.Fatal(err)
	}

	if err := f.run(t, "switch:saved"); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got := f.switcher.switches; len(got) != 1 || got[0] != "/external" {
		t.Errorf("switches = %v", got)
	}

	reopened, err := state.Open(f.dir, f.switcher, nil)
	if err != nil {
		t.Fatal(err)
	}
	s, err := reopened.State()
	if err != nil {
		t.Fatal(err)
	}
	if s.NextWindowsBootDisplay != nil {
		t.Errorf("next display = %v, want unset after the switch", *s.NextWindowsBootDisplay)
	}
	if s.CurrentDisplay == nil || *s.CurrentDisplay != options.TV {
		t.Errorf("current display = %v, want TV", s.CurrentDisplay)
	}
}

func TestExecute_SwitchNotSupported(t *testing.T) {
	f := newFixture(t, nil)

	err := f.run(t, "os:linux", "switch", "reboot")
	if !errors.Is(err, state.ErrSwitchNotSupported) {
		t.Fatalf("error = %v, want ErrSwitchNotSupported", err)
	}
	// Earlier axes stay applied, later ones never run.
	if os, _ := f.executor.Provider.NextBootOperatingSystem(); os == nil || *os != options.Linux {
		t.Errorf("next OS = %v, want Linux", os)
	}
	if len(f.actuator.calls) != 0 {
		t.Errorf("actuator calls = %v, want none", f.actuator.calls)
	}
}

func TestExecute_RebootAction(t *testing.T) {
	f := newFixture(t, nil)

	if err := f.run(t, "shutdown"); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(f.actuator.calls) != 1 || f.actuator.calls[0] != "shutdown" {
		t.Errorf("actuator calls = %v", f.actuator.calls)
	}
	if f.out.String() != "Desligando...\n" {
		t.Errorf("output = %q", f.out.String())
	}
}

func TestExecute_RebootActionFails(t *testing.T) {
	f := newFixture(t, nil)
	f.actuator.err = errors.New("exit status 1")

	if err := f.run(t, "reboot"); !errors.Is(err, f.actuator.err) {
		t.Errorf("error = %v, want actuator error", err)
	}
}

func TestExecute_DryRun(t *testing.T) {
	f := newFixture(t, nil)
	f.executor.DryRun = true

	if err := f.run(t, "reboot"); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(f.actuator.calls) != 0 {
		t.Errorf("actuator calls = %v, want none", f.actuator.calls)
	}
	if f.out.String() != "Reiniciando...\n...mas não de verdade!\n" {
		t.Errorf("output = %q", f.out.String())
	}
}

func TestExecute_Empty(t *testing.T) {
	f := newFixture(t, nil)
	if err := f.executor.Execute(context.Background(), Script{}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if f.out.Len() != 0 {
		t.Errorf("output = %q, want none", f.out.String())
	}
}
