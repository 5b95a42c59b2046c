// Package hostos provides the host collaborators the boot state needs:
// reboot/shutdown, display enumeration and display switching. Which
// capabilities exist depends on the operating system the binary runs on.
package hostos

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"my-reboot/internal/options"
	"my-reboot/internal/text"
)

// DisplaySwitcher is implemented only on hosts that can switch the active
// display. Its absence is meaningful: current display is unknown.
type DisplaySwitcher interface {
	// ActiveDisplayID returns the opaque device id of the active display.
	ActiveDisplayID() (string, error)

	// Switch issues the host switch command with arg and waits up to
	// timeout for the active display id to change. It reports whether the
	// change was observed.
	Switch(ctx context.Context, arg string, timeout time.Duration) (bool, error)
}

// Actuator reboots or powers off the machine.
type Actuator interface {
	Reboot(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// Runner runs an external command to completion.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// Host describes the operating system the binary is running on.
type Host struct {
	OS options.OperatingSystem
	// StateDir holds grubenv and the properties files.
	StateDir string
	Actuator Actuator
	// Switcher is nil when display switching is not supported.
	Switcher DisplaySwitcher
	// SwitchArgs are the two switch arguments tried by calibration.
	SwitchArgs [2]string
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// Run starts name and waits for it. A non-zero exit status is an error.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}

// CommandActuator reboots and shuts down by running host commands.
type CommandActuator struct {
	Runner          Runner
	RebootCommand   []string
	ShutdownCommand []string
}

var _ Actuator = CommandActuator{}

// Reboot runs the reboot command.
func (a CommandActuator) Reboot(ctx context.Context) error {
	return a.run(ctx, a.RebootCommand)
}

// Shutdown runs the power-off command.
func (a CommandActuator) Shutdown(ctx context.Context) error {
	return a.run(ctx, a.ShutdownCommand)
}

func (a CommandActuator) run(ctx context.Context, command []string) error {
	if len(command) == 0 {
		return errors.New(text.RebootActionFailed + ": comando não definido")
	}
	if err := a.Runner.Run(ctx, command[0], command[1:]...); err != nil {
		return fmt.Errorf("%s: %w", text.RebootActionFailed, err)
	}
	return nil
}
