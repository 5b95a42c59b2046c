package script

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"my-reboot/internal/hostos"
	"my-reboot/internal/options"
	"my-reboot/internal/state"
	"my-reboot/internal/text"
)

// Executor applies scripts to a state provider.
type Executor struct {
	Provider *state.Provider
	Actuator hostos.Actuator
	Out      io.Writer
	Painter  *text.Painter
	// DryRun prints the reboot action without performing it.
	DryRun bool
	Logger *slog.Logger
}

// Execute applies s in order: next boot OS, next Windows display, switch,
// reboot action. Axes applied before a failure stay applied.
func (e *Executor) Execute(ctx context.Context, s Script) error {
	if v := s.NextBootOperatingSystem; v != nil {
		if err := e.applyNextBootOperatingSystem(*v); err != nil {
			return err
		}
	}
	if v := s.NextWindowsBootDisplay; v != nil {
		if err := e.applyNextWindowsBootDisplay(*v); err != nil {
			return err
		}
	}
	if v := s.SwitchToDisplay; v != nil {
		if err := e.applySwitch(ctx, *v); err != nil {
			return err
		}
	}
	if v := s.RebootAction; v != nil {
		if err := e.applyRebootAction(ctx, *v); err != nil {
			return err
		}
	}
	return nil
}

func (e *Executor) applyNextBootOperatingSystem(v SetOrUnset[options.OperatingSystem]) error {
	var err error
	if os, ok := v.Value(); ok {
		err = e.Provider.SetNextBootOperatingSystem(os)
	} else {
		err = e.Provider.UnsetNextBootOperatingSystem()
	}
	if err != nil {
		return err
	}
	e.printUpdated(text.OSOnNextBootDescription, text.OSWasUpdatedTo, e.Painter.OperatingSystem(v.Ptr()))
	return nil
}

func (e *Executor) applyNextWindowsBootDisplay(v SetOrUnset[options.Display]) error {
	var err error
	if d, ok := v.Value(); ok {
		err = e.Provider.SetNextWindowsBootDisplay(d)
	} else {
		err = e.Provider.UnsetNextWindowsBootDisplay()
	}
	if err != nil {
		return err
	}
	e.printUpdated(text.DisplayOnNextWindowsBootDescription, text.DisplayWasUpdatedTo, e.Painter.Display(v.Ptr()))
	return nil
}

func (e *Executor) printUpdated(description, wasUpdatedTo, value string) {
	fmt.Fprintf(e.Out, "%s %s %s.\n", text.Capitalize(description), wasUpdatedTo, value)
}

func (e *Executor) applySwitch(ctx context.Context, v SwitchToDisplay) error {
	current, err := e.Provider.CurrentDisplay()
	if err != nil {
		return err
	}
	if current == nil {
		return state.ErrSwitchNotSupported
	}

	switch v.Kind {
	case SwitchKindOther:
		return e.switchTo(ctx, current.Other())

	case SwitchKindDisplay:
		if v.Display == *current {
			fmt.Fprintf(e.Out, "%s %s\n", e.Painter.Display(&v.Display), text.SwitchIsAlreadyCurrent)
			return nil
		}
		return e.switchTo(ctx, v.Display)

	case SwitchKindSaved:
		saved := e.Provider.NextWindowsBootDisplay()
		if saved == nil {
			fmt.Fprintln(e.Out, text.SavedDisplayIs(e.Painter.Display(nil)))
			return nil
		}
		if *saved == *current {
			fmt.Fprintln(e.Out, text.SavedDisplayIsCurrent(e.Painter.Display(saved)))
			return nil
		}
		if err := e.switchTo(ctx, *saved); err != nil {
			return err
		}
		// The saved preference is consumed once it has been applied.
		return e.Provider.UnsetNextWindowsBootDisplay()
	}
	return fmt.Errorf("unknown switch kind %d", v.Kind)
}

func (e *Executor) switchTo(ctx context.Context, d options.Display) error {
	fmt.Fprintf(e.Out, "%s %s\n", text.SwitchTo, e.Painter.Display(&d))
	return e.Provider.SetCurrentDisplay(ctx, d)
}

func (e *Executor) applyRebootAction(ctx context.Context, action options.RebootAction) error {
	message, do := text.Rebooting, e.Actuator.Reboot
	if action == options.Shutdown {
		message, do = text.ShuttingDown, e.Actuator.Shutdown
	}
	fmt.Fprintf(e.Out, "%s...\n", message)

	if e.DryRun {
		if e.Logger != nil {
			e.Logger.Info("dry run, skipping reboot action", "action", action.Code())
		}
		fmt.Fprintln(e.Out, e.Painter.Warning(text.NotReally))
		return nil
	}
	return do(ctx)
}
