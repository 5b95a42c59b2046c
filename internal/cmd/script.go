package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"my-reboot/internal/fault"
	"my-reboot/internal/script"
	"my-reboot/internal/text"
)

func newScriptCmd(provider *AppProvider) *cobra.Command {
	return &cobra.Command{
		Use:   "script NÚMERO",
		Short: "Executa o script correspondente às ações do diálogo básico do S.O. atual",
		Args:  maxArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return fault.NewUserError(text.MissingArgument, "NÚMERO")
			}
			app, err := provider.Get()
			if err != nil {
				return err
			}

			scripts := script.Predefined(app.Host.OS)
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 || n > len(scripts) {
				return fault.NewUserError(
					fmt.Sprintf("%s (mín: 1; máx: %d)", text.InvalidScriptNumber, len(scripts)), args[0])
			}
			return runScript(cmd, provider, scripts[n-1].Script)
		},
	}
}
