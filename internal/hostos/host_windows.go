//go:build windows

package hostos

import (
	"log/slog"

	"golang.org/x/sys/windows"

	"my-reboot/internal/options"
)

// DefaultStateDir is the Windows view of the partition holding the GRUB
// environment block.
const DefaultStateDir = `C:\grubenv.dir`

const displaySwitchPath = "DisplaySwitch.exe"

// Current returns the Windows host, which can switch displays.
func Current(logger *slog.Logger) Host {
	return Host{
		OS:       options.Windows,
		StateDir: DefaultStateDir,
		Actuator: CommandActuator{
			Runner:          ExecRunner{},
			RebootCommand:   []string{"shutdown", "/g", "/t", "0"},
			ShutdownCommand: []string{"shutdown", "/sg", "/t", "0"},
		},
		Switcher: &PollingSwitcher{
			Command:  displaySwitchPath,
			Probe:    activeDisplayID,
			Runner:   ExecRunner{},
			Clock:    RealClock{},
			Interval: DefaultProbeInterval,
			Logger:   logger,
		},
		SwitchArgs: currentDisplaySwitchArgs(),
	}
}

// currentDisplaySwitchArgs returns the DisplaySwitch arguments for the
// running Windows version.
func currentDisplaySwitchArgs() [2]string {
	v := windows.RtlGetVersion()
	return DisplaySwitchArgs(IsWindows11OrGreater(v.MajorVersion, v.MinorVersion, v.BuildNumber))
}
