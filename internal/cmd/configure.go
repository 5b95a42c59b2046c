package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"my-reboot/internal/configs"
	"my-reboot/internal/configure"
	"my-reboot/internal/fault"
	"my-reboot/internal/options"
	"my-reboot/internal/state"
	"my-reboot/internal/text"
)

func newConfigureCmd(provider *AppProvider) *cobra.Command {
	display := newDisplayValue()

	cmd := &cobra.Command{
		Use:   "configure [TELA]",
		Short: "Configura. Deve ser executado no Linux e no Windows ao menos uma vez",
		Long: `Configura. Deve ser executado no Linux e no Windows ao menos uma vez.

No Linux, lê as entradas do Grub. No Windows, TELA é a tela atual; a troca
de telas é testada e a configuração termina ao retornar para a tela inicial.`,
		Args: maxArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			if len(args) == 1 {
				if display.Get() != nil {
					return fault.NewUserError(text.ExceedingArgument, args[0])
				}
				if err := display.Set(args[0]); err != nil {
					return fault.NewUserError(text.UnexpectedArgument, args[0])
				}
			}

			cfgs, err := configs.Load(app.Settings.StateDir, false, app.Logger)
			if err != nil {
				return err
			}

			if app.Host.OS == options.Linux {
				if display.Get() != nil {
					return fault.NewUserError(text.ExceedingArgument, display.String())
				}
				return configure.Linux(cmd.Context(), app.Settings.GrubCfg, cfgs, app.Out)
			}

			initial := display.Get()
			if initial == nil {
				fmt.Fprintln(app.Out, configure.Instructions())
				return nil
			}
			if app.Host.Switcher == nil {
				return state.ErrSwitchNotSupported
			}
			return configure.Calibrate(cmd.Context(), app.Host.Switcher, cfgs, *initial,
				app.Host.SwitchArgs, app.Settings.ConfigureTimeout, app.Out)
		},
	}

	cmd.Flags().Var(display, "display", "Tela atual (monitor ou tv), o mesmo que TELA")

	return cmd
}
