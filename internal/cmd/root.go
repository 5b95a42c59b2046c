package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"my-reboot/internal/dialog"
	"my-reboot/internal/fault"
	"my-reboot/internal/script"
	"my-reboot/internal/text"
)

const usage = `Define o sistema operacional e a tela da próxima inicialização do computador.

Sem argumentos, exibe o diálogo básico. Com argumentos, executa o script
formado por eles:

  my-reboot (SO | TELA | TROCA-DE-TELA | AÇÃO)+

SO pode ser:
  [os:]windows - Inicia Windows na próxima inicialização do computador.
  [os:]linux - Inicia Linux na próxima inicialização do computador.
  os:unset - Deixa o Grub decidir o S.O. na próxima inicialização do computador.

TELA pode ser:
  [display:]monitor - Usa o monitor na próxima inicialização do Windows.
  [display:]tv - Usa a TV na próxima inicialização do Windows.
  display:unset - Deixa o Windows decidir a tela na próxima inicialização do Windows.

TROCA-DE-TELA pode ser (somente no Windows):
  switch[:other] - Troca para a outra tela.
  switch:monitor - Troca para o monitor.
  switch:tv - Troca para a TV.
  switch:saved - Troca para a tela definida para ser usada na próxima inicialização do Windows.

AÇÃO pode ser:
  reboot - Reinicia o computador.
  shutdown - Desliga o computador.`

// Execute runs the CLI.
func Execute() error {
	provider := &AppProvider{
		In:  os.Stdin,
		Out: os.Stdout,
		Err: os.Stderr,
	}

	rootCmd := newRootCmd(provider)
	return rootCmd.Execute()
}

// newRootCmd creates the root command with all subcommands.
func newRootCmd(provider *AppProvider) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "my-reboot [TOKENS...]",
		Short:         "Escolhe o sistema operacional e a tela da próxima inicialização",
		Long:          usage,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return runDialog(cmd, provider, dialog.Basic)
			}
			s, ok, err := script.Parse(args)
			if err != nil {
				return err
			}
			if !ok {
				return fault.NewUserError(text.UnexpectedArgument, args[0])
			}
			return runScript(cmd, provider, s)
		},
	}
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fault.NewUserError(text.UnexpectedArgument, err.Error())
	})

	// Global flags - these populate the provider config
	rootCmd.PersistentFlags().StringVar(&provider.ConfigPath, "config", "", "Arquivo de configurações (yaml ou toml; padrão: $MY_REBOOT_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&provider.StateDir, "state-dir", "", "Diretório com grubenv e os arquivos de propriedades")
	rootCmd.PersistentFlags().BoolVar(&provider.DryRun, "dry-run", false, "Não reinicia nem desliga de verdade")

	// Register all commands
	rootCmd.AddCommand(newShowCmd(provider))
	rootCmd.AddCommand(newScriptCmd(provider))
	rootCmd.AddCommand(newDialogCmd(provider))
	rootCmd.AddCommand(newConfigureCmd(provider))

	return rootCmd
}

// runScript applies s to the boot state.
func runScript(cmd *cobra.Command, provider *AppProvider, s script.Script) error {
	app, err := provider.Get()
	if err != nil {
		return err
	}
	p, err := app.Provider()
	if err != nil {
		return err
	}
	return app.Executor(p).Execute(cmd.Context(), s)
}
