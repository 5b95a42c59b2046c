//go:build !windows

package hostos

import (
	"log/slog"

	"my-reboot/internal/options"
)

// DefaultStateDir is where the GRUB environment block and the properties
// files live on Linux.
const DefaultStateDir = "/boot/grub/grubenv.dir"

// Current returns the Linux host. Display switching is not supported, so
// logger is unused.
func Current(logger *slog.Logger) Host {
	return Host{
		OS:       options.Linux,
		StateDir: DefaultStateDir,
		Actuator: CommandActuator{
			Runner:          ExecRunner{},
			RebootCommand:   []string{"systemctl", "reboot"},
			ShutdownCommand: []string{"systemctl", "poweroff"},
		},
		SwitchArgs: DisplaySwitchArgs(false),
	}
}
