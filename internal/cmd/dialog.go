package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"my-reboot/internal/dialog"
	"my-reboot/internal/script"
)

func newDialogCmd(provider *AppProvider) *cobra.Command {
	var advanced bool

	cmd := &cobra.Command{
		Use:   "dialog [-x]",
		Short: "Exibe o diálogo básico, ou o avançado com -x",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := dialog.Basic
			if advanced {
				mode = dialog.Advanced
			}
			return runDialog(cmd, provider, mode)
		},
	}

	cmd.Flags().BoolVarP(&advanced, "advanced", "x", false, "Exibe o diálogo avançado")

	return cmd
}

// runDialog shows the dialog and executes what the user chose. Canceling
// changes nothing.
func runDialog(cmd *cobra.Command, provider *AppProvider, mode dialog.Mode) error {
	app, err := provider.Get()
	if err != nil {
		return err
	}
	p, err := app.Provider()
	if err != nil {
		return err
	}
	s, err := p.State()
	if err != nil {
		return err
	}

	predefined := script.Predefined(app.Host.OS)
	labels := make([]string, len(predefined))
	for i, named := range predefined {
		labels[i] = named.Label
	}
	initial := script.Options{
		NextBootOperatingSystem: s.NextBootOperatingSystem,
		NextWindowsBootDisplay:  s.NextWindowsBootDisplay,
	}

	m := dialog.New(mode, labels, initial, p.CanSwitchDisplay(), app.Painter.Renderer())
	outcome, ok, err := app.Dialog(cmd.Context(), m)
	if err != nil || !ok {
		return err
	}

	var chosen script.Script
	switch {
	case outcome.Options != nil:
		chosen = script.FromOptions(*outcome.Options)
	case outcome.Predefined >= 0 && outcome.Predefined < len(predefined):
		chosen = predefined[outcome.Predefined].Script
	default:
		return fmt.Errorf("dialog returned unknown script %d", outcome.Predefined)
	}
	return app.Executor(p).Execute(cmd.Context(), chosen)
}
