package script

import (
	"reflect"
	"testing"

	"my-reboot/internal/options"
)

func TestSetOrUnset(t *testing.T) {
	if v, ok := Set(options.TV).Value(); !ok || v != options.TV {
		t.Errorf("Set(TV).Value() = %v, %v", v, ok)
	}
	if _, ok := Unset[options.Display]().Value(); ok {
		t.Error("Unset().Value() reported a value")
	}
	if p := Unset[options.Display]().Ptr(); p != nil {
		t.Errorf("Unset().Ptr() = %v", *p)
	}
	linux := options.Linux
	if v, ok := SetOrUnsetFrom(&linux).Value(); !ok || v != options.Linux {
		t.Errorf("SetOrUnsetFrom(&Linux) = %v, %v", v, ok)
	}
	if _, ok := SetOrUnsetFrom[options.OperatingSystem](nil).Value(); ok {
		t.Error("SetOrUnsetFrom(nil) should unset")
	}
}

func TestFromOptions(t *testing.T) {
	windows, shutdown := options.Windows, options.Shutdown
	got := FromOptions(Options{
		NextBootOperatingSystem: &windows,
		SwitchDisplay:           true,
		RebootAction:            &shutdown,
	})
	want := Script{
		NextBootOperatingSystem: Set(options.Windows),
		NextWindowsBootDisplay:  Unset[options.Display](),
		SwitchToDisplay:         SwitchOther(),
		RebootAction:            &shutdown,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FromOptions = %+v, want %+v", got, want)
	}

	got = FromOptions(Options{})
	if got.SwitchToDisplay != nil || got.RebootAction != nil {
		t.Errorf("FromOptions(zero) = %+v", got)
	}
	if got.NextBootOperatingSystem == nil || got.NextWindowsBootDisplay == nil {
		t.Error("boot settings should always be written")
	}
}

func TestPredefined(t *testing.T) {
	linux := Predefined(options.Linux)
	if len(linux) != 2 {
		t.Fatalf("Linux scripts = %d, want 2", len(linux))
	}
	if linux[0].Label != "Reiniciar no Windows usando o monitor" || linux[1].Label != "Reiniciar no Windows usando a TV" {
		t.Errorf("Linux labels = %q, %q", linux[0].Label, linux[1].Label)
	}
	reboot := options.Reboot
	want := Script{
		NextBootOperatingSystem: Set(options.Windows),
		NextWindowsBootDisplay:  Set(options.TV),
		RebootAction:            &reboot,
	}
	if !reflect.DeepEqual(linux[1].Script, want) {
		t.Errorf("Linux script 2 = %+v", linux[1].Script)
	}

	windows := Predefined(options.Windows)
	if len(windows) != 1 || windows[0].Label != "Reiniciar no Linux" {
		t.Fatalf("Windows scripts = %+v", windows)
	}
	if windows[0].Script.NextWindowsBootDisplay != nil {
		t.Error("rebooting in Linux leaves the Windows display alone")
	}
}
