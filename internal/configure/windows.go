package configure

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"my-reboot/internal/configs"
	"my-reboot/internal/hostos"
	"my-reboot/internal/options"
	"my-reboot/internal/text"
)

// DefaultTimeout bounds each switch during calibration.
const DefaultTimeout = 5 * time.Second

// ErrNoSwitch is returned when neither switch argument changed the
// active display.
var ErrNoSwitch = errors.New(text.SwitchTakingTooLong)

// Calibrate learns the device id and switch argument of both displays.
// initial is the display active when it starts. It tries args[0] first:
// if the display changes, args[0] selects the other display and args[1]
// the initial one; otherwise args[1] is tried. It always switches back.
func Calibrate(ctx context.Context, switcher hostos.DisplaySwitcher, cfgs *configs.Configs,
	initial options.Display, args [2]string, timeout time.Duration, out io.Writer,
) error {
	initialID, err := switcher.ActiveDisplayID()
	if err != nil {
		return err
	}
	other := initial.Other()

	fmt.Fprintln(out, text.ConfigureSwitching)
	initialArg, otherArg := args[1], args[0]
	switched, err := switcher.Switch(ctx, otherArg, timeout)
	if err != nil {
		return err
	}
	if !switched {
		initialArg, otherArg = args[0], args[1]
		if switched, err = switcher.Switch(ctx, otherArg, timeout); err != nil {
			return err
		}
		if !switched {
			return ErrNoSwitch
		}
	}
	otherID, err := switcher.ActiveDisplayID()
	if err != nil {
		return err
	}

	fmt.Fprintln(out, text.ConfigureSwitchingBack)
	if _, err := switcher.Switch(ctx, initialArg, timeout); err != nil {
		return err
	}

	cfgs.SetDeviceID(initial, initialID)
	cfgs.SetDeviceID(other, otherID)
	cfgs.SetDisplaySwitchArg(initial, initialArg)
	cfgs.SetDisplaySwitchArg(other, otherArg)
	fmt.Fprintln(out, text.ConfigureSaving)
	if err := cfgs.Save(); err != nil {
		return err
	}
	fmt.Fprintln(out, text.ConfigureDone)
	return nil
}

// Instructions explains how to run the Windows calibration.
func Instructions() string {
	return "Execute:\n" +
		"  my-reboot configure TELA\n" +
		"onde TELA é a tela atual (" + text.QuotedList(options.Codes(options.Displays())) + ").\n\n" +
		"Será testada a troca de telas. A configuração termina ao retornar para a tela inicial."
}
