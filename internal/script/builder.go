package script

import (
	"my-reboot/internal/fault"
	"my-reboot/internal/options"
	"my-reboot/internal/text"
)

// Builder assembles a Script, refusing a second change to any axis.
type Builder struct {
	script Script
}

// NextBootOperatingSystem sets the OS axis. arg is reported on error.
func (b *Builder) NextBootOperatingSystem(v *SetOrUnset[options.OperatingSystem], arg string) error {
	return setOnce(&b.script.NextBootOperatingSystem, v, arg, text.OSOnNextBootDescription)
}

// NextWindowsBootDisplay sets the display axis.
func (b *Builder) NextWindowsBootDisplay(v *SetOrUnset[options.Display], arg string) error {
	return setOnce(&b.script.NextWindowsBootDisplay, v, arg, text.DisplayOnNextWindowsBootDescription)
}

// SwitchToDisplay sets the switch axis.
func (b *Builder) SwitchToDisplay(v *SwitchToDisplay, arg string) error {
	return setOnce(&b.script.SwitchToDisplay, v, arg, text.SwitchDescription)
}

// RebootAction sets the action axis.
func (b *Builder) RebootAction(v options.RebootAction, arg string) error {
	return setOnce(&b.script.RebootAction, &v, arg, text.RebootActionDescription)
}

// Script returns the assembled script.
func (b *Builder) Script() Script {
	return b.script
}

func setOnce[T any](dst **T, v *T, arg, axis string) error {
	if *dst != nil {
		return fault.NewUserError(text.RepeatedOption(axis), arg)
	}
	*dst = v
	return nil
}
