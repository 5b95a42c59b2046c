package cmd

import (
	"github.com/spf13/cobra"

	"my-reboot/internal/fault"
	"my-reboot/internal/text"
)

// noArgs rejects any positional argument as a user error.
func noArgs(cmd *cobra.Command, args []string) error {
	return maxArgs(0)(cmd, args)
}

// maxArgs rejects more than n positional arguments as a user error.
func maxArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) > n {
			return fault.NewUserError(text.ExceedingArgument, args[n])
		}
		return nil
	}
}
