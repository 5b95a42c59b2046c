package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"my-reboot/internal/text"
)

func newShowCmd(provider *AppProvider) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Exibe as opções atuais para inicialização",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
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

			if jsonOutput {
				enc := json.NewEncoder(app.Out)
				enc.SetIndent("", "  ")
				return enc.Encode(s)
			}

			fmt.Fprintf(app.Out, "%s: %s\n", text.Capitalize(text.OSOnNextBootDescription), app.Painter.OperatingSystem(s.NextBootOperatingSystem))
			fmt.Fprintf(app.Out, "%s: %s\n", text.Capitalize(text.DisplayOnNextWindowsBootDescription), app.Painter.Display(s.NextWindowsBootDisplay))
			if p.CanSwitchDisplay() {
				fmt.Fprintf(app.Out, "%s: %s\n", text.Capitalize(text.DisplayCurrent), app.Painter.Display(s.CurrentDisplay))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Exibe em JSON")

	return cmd
}
